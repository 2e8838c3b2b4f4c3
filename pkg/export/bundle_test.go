package export

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"focalpick/pkg/focal"
	"focalpick/pkg/model"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func TestBundle(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	writeTestPNG(t, filepath.Join(srcDir, "hero.png"), 80, 40)
	writeTestPNG(t, filepath.Join(srcDir, "nofocal.png"), 80, 40)

	items := []model.Media{
		{Path: "hero.png", Format: model.FormatPNG, SourceDir: srcDir},
		{Path: "nofocal.png", Format: model.FormatPNG, SourceDir: srcDir},
	}
	items[0].SetFocal(focal.FocalPoint{X: 0.5, Y: 0.5}, time.Now())

	res, err := Bundle(items, Options{OutDir: outDir, Width: 32, Height: 32})
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}
	if res.Exported != 1 || res.Skipped != 1 {
		t.Errorf("result = %+v, want 1 exported, 1 skipped", res)
	}

	for _, name := range []string{"hero.crop.png", "hero.overlay.png", "hero.overlay.svg", "index.html"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	// The crop preview must match the requested size.
	f, err := os.Open(filepath.Join(outDir, "hero.crop.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode crop: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 32 {
		t.Errorf("crop size = %dx%d, want 32x32", cfg.Width, cfg.Height)
	}

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "hero.crop.png") {
		t.Error("index.html does not reference the exported crop")
	}
}

func TestBundle_InvalidSize(t *testing.T) {
	if _, err := Bundle(nil, Options{OutDir: t.TempDir(), Width: 0, Height: 10}); err == nil {
		t.Error("zero crop width must be rejected")
	}
}

func TestRenderOverlaySVG(t *testing.T) {
	var b strings.Builder
	err := renderOverlaySVG(&b, "hero.png", 400, 200, 100, 100, focal.FocalPoint{X: 0.5, Y: 0.25})
	if err != nil {
		t.Fatalf("renderOverlaySVG: %v", err)
	}
	out := b.String()

	for _, want := range []string{"<svg", "hero.png", "focal(0.500x0.250)", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("svg output missing %q", want)
		}
	}
}
