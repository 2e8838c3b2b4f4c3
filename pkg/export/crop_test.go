package export

import (
	"image"
	"testing"

	"focalpick/pkg/focal"
)

func TestCropWindow_CenteredFocal(t *testing.T) {
	// 400x200 source, square target: the window is 200x200 centered on the
	// focal point.
	win := CropWindow(400, 200, 100, 100, focal.FocalPoint{X: 0.5, Y: 0.5})
	want := image.Rect(100, 0, 300, 200)
	if win != want {
		t.Errorf("window = %v, want %v", win, want)
	}
}

func TestCropWindow_FocalNearEdgeClampsToBounds(t *testing.T) {
	win := CropWindow(400, 200, 100, 100, focal.FocalPoint{X: 0.02, Y: 0.5})
	want := image.Rect(0, 0, 200, 200)
	if win != want {
		t.Errorf("window = %v, want clamped %v", win, want)
	}

	win = CropWindow(400, 200, 100, 100, focal.FocalPoint{X: 0.99, Y: 0.5})
	want = image.Rect(200, 0, 400, 200)
	if win != want {
		t.Errorf("window = %v, want clamped %v", win, want)
	}
}

func TestCropWindow_UnclampedFocalIsBounded(t *testing.T) {
	// Stored focal points may fall outside [0,1]; the crop window must still
	// stay within the source.
	win := CropWindow(400, 200, 100, 100, focal.FocalPoint{X: 1.4, Y: -0.3})
	if !win.In(image.Rect(0, 0, 400, 200)) {
		t.Errorf("window %v escapes source bounds", win)
	}
}

func TestCropWindow_WideTarget(t *testing.T) {
	// 200x200 source, 2:1 target: full width, half height.
	win := CropWindow(200, 200, 200, 100, focal.FocalPoint{X: 0.5, Y: 0.25})
	want := image.Rect(0, 0, 200, 100)
	if win != want {
		t.Errorf("window = %v, want %v", win, want)
	}
}

func TestCropWindow_DegenerateInputs(t *testing.T) {
	if win := CropWindow(0, 100, 10, 10, focal.FocalPoint{}); !win.Empty() {
		t.Errorf("zero source must yield empty window, got %v", win)
	}
	if win := CropWindow(100, 100, 0, 10, focal.FocalPoint{}); !win.Empty() {
		t.Errorf("zero target must yield empty window, got %v", win)
	}
}

func TestFocalPixel(t *testing.T) {
	x, y := FocalPixel(200, 100, focal.FocalPoint{X: 0.5, Y: 0.25})
	if x != 100 || y != 25 {
		t.Errorf("focal pixel = (%d,%d), want (100,25)", x, y)
	}

	// Clamped to the last pixel, never out of bounds.
	x, y = FocalPixel(200, 100, focal.FocalPoint{X: 1, Y: 1})
	if x != 199 || y != 99 {
		t.Errorf("focal pixel = (%d,%d), want (199,99)", x, y)
	}
}
