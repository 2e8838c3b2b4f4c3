package model

import (
	"testing"
	"time"

	"focalpick/pkg/focal"
)

func TestMediaValidate(t *testing.T) {
	m := Media{Path: "a.png", Format: FormatPNG, PixelWidth: 10, PixelHeight: 10}
	if err := m.Validate(); err != nil {
		t.Fatalf("valid media rejected: %v", err)
	}

	bad := Media{Format: FormatPNG}
	if err := bad.Validate(); err == nil {
		t.Error("empty path must be rejected")
	}

	bad = Media{Path: "a.xyz", Format: Format("xyz")}
	if err := bad.Validate(); err == nil {
		t.Error("unknown format must be rejected")
	}

	bad = Media{Path: "a.png", Format: FormatPNG, PixelWidth: -1}
	if err := bad.Validate(); err == nil {
		t.Error("negative dimensions must be rejected")
	}
}

func TestMediaClone(t *testing.T) {
	at := time.Now()
	m := Media{
		Path:     "a.png",
		Format:   FormatPNG,
		Tags:     []string{"hero"},
		EditedAt: &at,
	}

	clone := m.Clone()
	clone.Tags[0] = "changed"
	*clone.EditedAt = at.Add(time.Hour)

	if m.Tags[0] != "hero" {
		t.Error("clone shares the tags slice")
	}
	if !m.EditedAt.Equal(at) {
		t.Error("clone shares the edited-at pointer")
	}
}

func TestSetFocal(t *testing.T) {
	var m Media
	at := time.Now()
	m.SetFocal(focal.FocalPoint{X: 0.3, Y: 0.7}, at)

	if !m.HasFocal {
		t.Fatal("HasFocal not set")
	}
	if m.Focal.X != 0.3 || m.Focal.Y != 0.7 {
		t.Errorf("focal = %+v, want {0.3 0.7}", m.Focal)
	}
	if m.EditedAt == nil || !m.EditedAt.Equal(at) {
		t.Error("edit time not stamped")
	}
}

func TestFormatForExt(t *testing.T) {
	cases := []struct {
		ext  string
		want Format
		ok   bool
	}{
		{"png", FormatPNG, true},
		{"jpg", FormatJPEG, true},
		{"jpeg", FormatJPEG, true},
		{"webp", FormatWebP, true},
		{"tif", FormatTIFF, true},
		{"txt", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := FormatForExt(tc.ext)
		if got != tc.want || ok != tc.ok {
			t.Errorf("FormatForExt(%q) = %v %v, want %v %v", tc.ext, got, ok, tc.want, tc.ok)
		}
	}
}
