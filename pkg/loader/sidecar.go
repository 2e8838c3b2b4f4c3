package loader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"focalpick/pkg/focal"
	"focalpick/pkg/model"
)

// SidecarEntry is one line of the points sidecar.
type SidecarEntry struct {
	Path     string           `json:"path"`
	Focal    focal.FocalPoint `json:"focal"`
	EditedAt *time.Time       `json:"edited_at,omitempty"`
}

// LoadSidecar reads focal point entries from a JSONL sidecar file, keyed by
// media path. A missing file is not an error: editing may not have started
// yet. Later lines win over earlier ones for the same path, so appends are a
// valid write strategy.
func LoadSidecar(path string) (map[string]SidecarEntry, error) {
	points := make(map[string]SidecarEntry)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return points, nil
		}
		return nil, fmt.Errorf("failed to open sidecar file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry SidecarEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			// Skip malformed lines but continue loading the rest
			continue
		}
		if entry.Path == "" {
			continue
		}
		points[entry.Path] = entry
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading sidecar file: %w", err)
	}

	return points, nil
}

// SaveSidecar rewrites the sidecar for the given media set, one line per
// item that has a focal point. The write goes through a temp file and rename
// so a crash never leaves a half-written sidecar.
func SaveSidecar(dir string, items []model.Media) error {
	sidecarDir := filepath.Join(dir, SidecarDir)
	if err := os.MkdirAll(sidecarDir, 0755); err != nil {
		return fmt.Errorf("create sidecar directory: %w", err)
	}

	entries := make([]SidecarEntry, 0, len(items))
	for _, m := range items {
		if !m.HasFocal {
			continue
		}
		entries = append(entries, SidecarEntry{
			Path:     m.Path,
			Focal:    m.Focal,
			EditedAt: m.EditedAt,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	tmp, err := os.CreateTemp(sidecarDir, SidecarFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("create sidecar temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w)
	for _, entry := range entries {
		if err := enc.Encode(entry); err != nil {
			tmp.Close()
			return fmt.Errorf("encode sidecar entry: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush sidecar: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close sidecar temp file: %w", err)
	}

	final := filepath.Join(sidecarDir, SidecarFile)
	if err := os.Rename(tmp.Name(), final); err != nil {
		return fmt.Errorf("replace sidecar file: %w", err)
	}
	return nil
}
