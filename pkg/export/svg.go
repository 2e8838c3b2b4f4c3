package export

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"focalpick/pkg/focal"
)

// WriteOverlaySVG writes an SVG diagram of the focal point and crop window
// over a referenced image file. The image itself is linked, not embedded,
// so the overlay stays small and the source file remains the single copy.
func WriteOverlaySVG(imageHref string, srcW, srcH, dstW, dstH int, p focal.FocalPoint, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create overlay svg: %w", err)
	}
	if err := renderOverlaySVG(f, imageHref, srcW, srcH, dstW, dstH, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderOverlaySVG(w io.Writer, imageHref string, srcW, srcH, dstW, dstH int, p focal.FocalPoint) error {
	win := CropWindow(srcW, srcH, dstW, dstH, p)
	fx, fy := FocalPixel(srcW, srcH, p)

	canvas := svg.New(w)
	canvas.Start(srcW, srcH)
	canvas.Image(0, 0, srcW, srcH, imageHref)

	canvas.Rect(win.Min.X, win.Min.Y, win.Dx(), win.Dy(),
		"fill:none;stroke:#ffffff;stroke-width:2;stroke-opacity:0.9")

	canvas.Circle(fx, fy, markerRadius,
		"fill:none;stroke:#ff4554;stroke-width:2")
	canvas.Line(fx-markerRadius*3/2, fy, fx+markerRadius*3/2, fy,
		"stroke:#ff4554;stroke-width:2")
	canvas.Line(fx, fy-markerRadius*3/2, fx, fy+markerRadius*3/2,
		"stroke:#ff4554;stroke-width:2")

	canvas.Text(8, srcH-8,
		fmt.Sprintf("focal(%.3fx%.3f)", p.Clamp().X, p.Clamp().Y),
		"font-family:monospace;font-size:14px;fill:#ffffff;stroke:#000000;stroke-width:0.5")

	canvas.End()
	return nil
}
