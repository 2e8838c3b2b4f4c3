package model

import (
	"fmt"
	"time"

	"focalpick/pkg/focal"
)

// Media represents one image under focal-point editing
type Media struct {
	Path        string           `json:"path"`
	Format      Format           `json:"format"`
	PixelWidth  int              `json:"pixel_width"`
	PixelHeight int              `json:"pixel_height"`
	Focal       focal.FocalPoint `json:"focal"`
	HasFocal    bool             `json:"has_focal"`
	Tags        []string         `json:"tags,omitempty"`
	ModifiedAt  time.Time        `json:"modified_at"`
	EditedAt    *time.Time       `json:"edited_at,omitempty"`
	SourceDir   string           `json:"-"`
}

// Clone creates a deep copy of the media item
func (m Media) Clone() Media {
	clone := m

	if m.EditedAt != nil {
		v := *m.EditedAt
		clone.EditedAt = &v
	}
	if m.Tags != nil {
		clone.Tags = make([]string, len(m.Tags))
		copy(clone.Tags, m.Tags)
	}

	return clone
}

// Validate checks if the media data is logically valid
func (m *Media) Validate() error {
	if m.Path == "" {
		return fmt.Errorf("media path cannot be empty")
	}
	if !m.Format.IsValid() {
		return fmt.Errorf("invalid format: %s", m.Format)
	}
	if m.PixelWidth < 0 || m.PixelHeight < 0 {
		return fmt.Errorf("negative pixel dimensions: %dx%d", m.PixelWidth, m.PixelHeight)
	}
	return nil
}

// SetFocal records a committed focal point and stamps the edit time
func (m *Media) SetFocal(p focal.FocalPoint, at time.Time) {
	m.Focal = p
	m.HasFocal = true
	m.EditedAt = &at
}

// AspectRatio returns width/height, or 0 when dimensions are unknown
func (m Media) AspectRatio() float64 {
	if m.PixelHeight == 0 {
		return 0
	}
	return float64(m.PixelWidth) / float64(m.PixelHeight)
}

// Format identifies the image encoding of a media item
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatWebP Format = "webp"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// IsValid returns true if the format is a recognized value
func (f Format) IsValid() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatGIF, FormatWebP, FormatBMP, FormatTIFF:
		return true
	}
	return false
}

// FormatForExt returns the format for a file extension (without the dot),
// or false when the extension is not a supported image type.
func FormatForExt(ext string) (Format, bool) {
	switch ext {
	case "png":
		return FormatPNG, true
	case "jpg", "jpeg":
		return FormatJPEG, true
	case "gif":
		return FormatGIF, true
	case "webp":
		return FormatWebP, true
	case "bmp":
		return FormatBMP, true
	case "tif", "tiff":
		return FormatTIFF, true
	}
	return "", false
}

// FocalRecord is one committed focal point change, as persisted to the
// history database.
type FocalRecord struct {
	ID        int64     `json:"id"`
	MediaPath string    `json:"media_path"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Source    Source    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// Source categorizes how a focal point change was produced
type Source string

const (
	SourceDrag    Source = "drag"
	SourceSlider  Source = "slider"
	SourceSuggest Source = "suggest"
)

// IsValid returns true if the source is a recognized value
func (s Source) IsValid() bool {
	switch s {
	case SourceDrag, SourceSlider, SourceSuggest:
		return true
	}
	return false
}
