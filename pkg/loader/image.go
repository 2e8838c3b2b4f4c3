package loader

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Register stdlib decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	// Register extended decoders.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode opens and decodes the image at dir/path.
func Decode(dir, path string) (image.Image, error) {
	return decodeFile(filepath.Join(dir, path))
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// Dimensions reads just the image header and returns its pixel size.
func Dimensions(dir, path string) (int, int, error) {
	f, err := os.Open(filepath.Join(dir, path))
	if err != nil {
		return 0, 0, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image header %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Downscale resizes img to fit within maxW x maxH, preserving aspect ratio.
// Images already small enough are returned as-is. ApproxBiLinear keeps the
// terminal preview path fast; export quality goes through gg instead.
func Downscale(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return img
	}

	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}
	dw, dh := int(float64(w)*scale), int(float64(h)*scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
