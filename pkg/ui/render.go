package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// halfBlockCells rasterizes img into a grid of styled single-rune cells,
// two image rows per terminal row using the upper-half-block glyph. The
// grid is exactly hCells rows of wCells entries; cells beyond the image are
// blanks, so the caller can overlay markers by replacing entries.
func halfBlockCells(img image.Image, wCells, hCells int, renderer *lipgloss.Renderer) [][]string {
	rows := make([][]string, hCells)
	for y := range rows {
		rows[y] = make([]string, wCells)
		for x := range rows[y] {
			rows[y][x] = " "
		}
	}
	if img == nil {
		return rows
	}

	b := img.Bounds()
	for cy := 0; cy < hCells; cy++ {
		topY := b.Min.Y + cy*2
		bottomY := topY + 1
		if topY >= b.Max.Y {
			break
		}
		for cx := 0; cx < wCells && b.Min.X+cx < b.Max.X; cx++ {
			px := b.Min.X + cx

			style := renderer.NewStyle().Foreground(hexColor(img.At(px, topY)))
			if bottomY < b.Max.Y {
				style = style.Background(hexColor(img.At(px, bottomY)))
			}
			rows[cy][cx] = style.Render("▀")
		}
	}
	return rows
}

// hexColor converts a color to a lipgloss truecolor value.
func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
