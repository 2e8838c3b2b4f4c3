// Package suggest proposes a starting focal point for an image by finding
// the cell with the strongest luminance edges. It is a rough heuristic, not
// a saliency model: the point it returns is meant to be dragged, not
// trusted.
package suggest

import (
	"fmt"
	"image"
	"math"

	"gonum.org/v1/gonum/stat"

	"focalpick/pkg/focal"
)

// GridSize is the number of candidate cells per axis.
const GridSize = 8

// minZScore is the significance threshold: if no cell's energy stands out
// this far above the mean, the image is considered featureless and the
// center is suggested instead.
const minZScore = 1.0

// FocalPoint suggests a focal point for img, returned as the center of the
// grid cell with the highest edge energy. The second return is false when
// the energy distribution is flat and the suggestion is just the center.
func FocalPoint(img image.Image) (focal.FocalPoint, bool, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < GridSize || h < GridSize {
		return focal.FocalPoint{}, false, fmt.Errorf("image too small to analyze: %dx%d", w, h)
	}

	lum := luminance(img)
	energies := cellEnergies(lum, w, h)

	mean, std := stat.MeanStdDev(energies, nil)

	best := 0
	for i, e := range energies {
		if e > energies[best] {
			best = i
		}
	}

	center := focal.FocalPoint{X: 0.5, Y: 0.5}
	if std == 0 || (energies[best]-mean)/std < minZScore {
		return center, false, nil
	}

	cellX := best % GridSize
	cellY := best / GridSize
	return focal.FocalPoint{
		X: (float64(cellX) + 0.5) / GridSize,
		Y: (float64(cellY) + 0.5) / GridSize,
	}, true, nil
}

// luminance flattens the image into a row-major float grid of perceptual
// luminance values in [0, 1].
func luminance(img image.Image) []float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	lum := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			lum[y*w+x] = (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bl)) / 0xffff
		}
	}
	return lum
}

// cellEnergies sums gradient magnitude per grid cell.
func cellEnergies(lum []float64, w, h int) []float64 {
	energies := make([]float64, GridSize*GridSize)
	counts := make([]float64, GridSize*GridSize)

	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			dx := lum[y*w+x+1] - lum[y*w+x]
			dy := lum[(y+1)*w+x] - lum[y*w+x]
			mag := math.Hypot(dx, dy)

			cell := (y*GridSize/h)*GridSize + x*GridSize/w
			energies[cell] += mag
			counts[cell]++
		}
	}

	// Normalize by cell pixel count so edge cells are not penalized for
	// being smaller.
	for i := range energies {
		if counts[i] > 0 {
			energies[i] /= counts[i]
		}
	}
	return energies
}
