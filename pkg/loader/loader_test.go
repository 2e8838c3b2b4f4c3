package loader_test

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"focalpick/pkg/focal"
	"focalpick/pkg/loader"
	"focalpick/pkg/model"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestLoadMedia_ScansSupportedFormatsOnly(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "a.png"), 4, 4)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := loader.LoadMedia(dir)
	if err != nil {
		t.Fatalf("LoadMedia: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 media items, got %d", len(items))
	}
	if items[0].Path != "a.png" || items[1].Path != "b.png" {
		t.Errorf("items not sorted by path: %s, %s", items[0].Path, items[1].Path)
	}
	if items[0].Format != model.FormatPNG {
		t.Errorf("format = %s, want png", items[0].Format)
	}
	if items[0].HasFocal {
		t.Error("fresh media must not carry a focal point")
	}
}

func TestSidecarRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "hero.png"), 4, 4)

	at := time.Now().Truncate(time.Second)
	items := []model.Media{
		{Path: "hero.png", Format: model.FormatPNG, SourceDir: dir},
		{Path: "skip.png", Format: model.FormatPNG, SourceDir: dir},
	}
	items[0].SetFocal(focal.FocalPoint{X: 0.42, Y: 0.31}, at)

	if err := loader.SaveSidecar(dir, items); err != nil {
		t.Fatalf("SaveSidecar: %v", err)
	}

	loaded, err := loader.LoadMedia(dir)
	if err != nil {
		t.Fatalf("LoadMedia: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 media item, got %d", len(loaded))
	}
	if !loaded[0].HasFocal {
		t.Fatal("focal point not restored from sidecar")
	}
	if loaded[0].Focal.X != 0.42 || loaded[0].Focal.Y != 0.31 {
		t.Errorf("focal = %+v, want {0.42 0.31}", loaded[0].Focal)
	}
}

func TestLoadSidecar_LaterLinesWin(t *testing.T) {
	dir := t.TempDir()
	sidecarDir := filepath.Join(dir, loader.SidecarDir)
	if err := os.MkdirAll(sidecarDir, 0755); err != nil {
		t.Fatal(err)
	}
	lines := `{"path":"a.png","focal":{"x":0.1,"y":0.1}}
not json at all
{"path":"a.png","focal":{"x":0.9,"y":0.8}}
{"focal":{"x":0.5,"y":0.5}}
`
	path := filepath.Join(sidecarDir, loader.SidecarFile)
	if err := os.WriteFile(path, []byte(lines), 0644); err != nil {
		t.Fatal(err)
	}

	points, err := loader.LoadSidecar(path)
	if err != nil {
		t.Fatalf("LoadSidecar: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(points))
	}
	if points["a.png"].Focal.X != 0.9 {
		t.Errorf("X = %v, want the later line's 0.9", points["a.png"].Focal.X)
	}
}

func TestLoadSidecar_MissingFileIsEmpty(t *testing.T) {
	points, err := loader.LoadSidecar(filepath.Join(t.TempDir(), "nope.jsonl"))
	if err != nil {
		t.Fatalf("missing sidecar must not error: %v", err)
	}
	if len(points) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(points))
	}
}

func TestDimensionsAndDecode(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "wide.png"), 64, 16)

	w, h, err := loader.Dimensions(dir, "wide.png")
	if err != nil {
		t.Fatalf("Dimensions: %v", err)
	}
	if w != 64 || h != 16 {
		t.Errorf("dimensions = %dx%d, want 64x16", w, h)
	}

	img, err := loader.Decode(dir, "wide.png")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("decoded width = %d, want 64", img.Bounds().Dx())
	}
}

func TestDownscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))

	small := loader.Downscale(img, 50, 50)
	if small.Bounds().Dx() != 50 || small.Bounds().Dy() != 25 {
		t.Errorf("downscaled = %v, want 50x25", small.Bounds())
	}

	same := loader.Downscale(img, 200, 200)
	if same.Bounds().Dx() != 100 {
		t.Error("images within bounds must be returned unscaled")
	}
}
