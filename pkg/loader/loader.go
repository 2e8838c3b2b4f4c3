// Package loader discovers media files and persists their focal points to a
// JSONL sidecar next to the media directory.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"focalpick/pkg/model"
)

// SidecarDir is the per-directory metadata location.
const SidecarDir = ".focalpick"

// SidecarFile holds one focal point entry per line.
const SidecarFile = "points.jsonl"

// LoadMedia scans dir for supported images and merges in any focal points
// recorded in the sidecar file. An empty dir means the current working
// directory. Results are sorted by path.
func LoadMedia(dir string) ([]model.Media, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read media directory: %w", err)
	}

	var items []model.Media
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(entry.Name())), ".")
		format, ok := model.FormatForExt(ext)
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// File vanished between ReadDir and Info; skip it.
			continue
		}

		items = append(items, model.Media{
			Path:       entry.Name(),
			Format:     format,
			ModifiedAt: info.ModTime(),
			SourceDir:  dir,
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Path < items[j].Path })

	points, err := LoadSidecar(filepath.Join(dir, SidecarDir, SidecarFile))
	if err != nil {
		return nil, err
	}
	for i := range items {
		if e, ok := points[items[i].Path]; ok {
			items[i].Focal = e.Focal
			items[i].HasFocal = true
			items[i].EditedAt = e.EditedAt
		}
	}

	return items, nil
}
