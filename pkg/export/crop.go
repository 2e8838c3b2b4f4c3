// Package export renders committed focal points into reviewable artifacts:
// focal-biased crop previews (PNG), overlay diagrams (SVG), and a static
// bundle that can be served locally for review.
package export

import (
	"image"
	"math"

	"focalpick/pkg/focal"
)

// CropWindow computes the source rectangle for a crop of the given target
// aspect ratio, biased toward the focal point. The window is the largest
// rectangle of that aspect fitting inside the source, centered on the focal
// point as far as the source bounds allow.
func CropWindow(srcW, srcH, dstW, dstH int, p focal.FocalPoint) image.Rectangle {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return image.Rectangle{}
	}

	// Focal points are stored unclamped; bound them here where they become
	// pixel coordinates.
	p = p.Clamp()

	srcAspect := float64(srcW) / float64(srcH)
	dstAspect := float64(dstW) / float64(dstH)

	var cropW, cropH float64
	if dstAspect > srcAspect {
		cropW = float64(srcW)
		cropH = cropW / dstAspect
	} else {
		cropH = float64(srcH)
		cropW = cropH * dstAspect
	}

	cx := p.X * float64(srcW)
	cy := p.Y * float64(srcH)

	x0 := clampRange(cx-cropW/2, 0, float64(srcW)-cropW)
	y0 := clampRange(cy-cropH/2, 0, float64(srcH)-cropH)

	return image.Rect(
		int(math.Round(x0)),
		int(math.Round(y0)),
		int(math.Round(x0+cropW)),
		int(math.Round(y0+cropH)),
	)
}

// FocalPixel returns the focal point's pixel position within a source of
// the given size, clamped to the image bounds.
func FocalPixel(srcW, srcH int, p focal.FocalPoint) (int, int) {
	p = p.Clamp()
	x := int(math.Round(focal.FractionToPixel(p.X, float64(srcW))))
	y := int(math.Round(focal.FractionToPixel(p.Y, float64(srcH))))
	if x >= srcW {
		x = srcW - 1
	}
	if y >= srcH {
		y = srcH - 1
	}
	return x, y
}

func clampRange(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
