package export

import (
	"fmt"
	"image"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/draw"

	"focalpick/pkg/focal"
)

// markerRadius is the focal crosshair circle radius in output pixels.
const markerRadius = 12

// WriteCrop renders the focal-biased crop of img at dstW x dstH and saves
// it as a PNG.
func WriteCrop(img image.Image, dstW, dstH int, p focal.FocalPoint, path string) error {
	b := img.Bounds()
	win := CropWindow(b.Dx(), b.Dy(), dstW, dstH, p)
	if win.Empty() {
		return fmt.Errorf("degenerate crop window for %dx%d -> %dx%d", b.Dx(), b.Dy(), dstW, dstH)
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, win.Add(b.Min), draw.Over, nil)

	dc := gg.NewContextForImage(dst)
	return dc.SavePNG(path)
}

// WriteOverlayPNG renders img at full size with the crop window and focal
// crosshair drawn on top, and saves it as a PNG.
func WriteOverlayPNG(img image.Image, dstW, dstH int, p focal.FocalPoint, path string) error {
	b := img.Bounds()
	win := CropWindow(b.Dx(), b.Dy(), dstW, dstH, p)
	fx, fy := FocalPixel(b.Dx(), b.Dy(), p)

	dc := gg.NewContextForImage(img)

	// Dim everything outside the crop window.
	dc.SetRGBA(0, 0, 0, 0.45)
	dc.DrawRectangle(0, 0, float64(b.Dx()), float64(win.Min.Y))
	dc.DrawRectangle(0, float64(win.Max.Y), float64(b.Dx()), float64(b.Dy()-win.Max.Y))
	dc.DrawRectangle(0, float64(win.Min.Y), float64(win.Min.X), float64(win.Dy()))
	dc.DrawRectangle(float64(win.Max.X), float64(win.Min.Y), float64(b.Dx()-win.Max.X), float64(win.Dy()))
	dc.Fill()

	// Crop window outline.
	dc.SetRGBA(1, 1, 1, 0.9)
	dc.SetLineWidth(2)
	dc.DrawRectangle(float64(win.Min.X), float64(win.Min.Y), float64(win.Dx()), float64(win.Dy()))
	dc.Stroke()

	// Focal crosshair.
	dc.SetRGBA(1, 0.27, 0.33, 1)
	dc.SetLineWidth(2)
	dc.DrawCircle(float64(fx), float64(fy), markerRadius)
	dc.Stroke()
	dc.DrawLine(float64(fx)-markerRadius*1.5, float64(fy), float64(fx)+markerRadius*1.5, float64(fy))
	dc.DrawLine(float64(fx), float64(fy)-markerRadius*1.5, float64(fx), float64(fy)+markerRadius*1.5)
	dc.Stroke()

	return dc.SavePNG(path)
}
