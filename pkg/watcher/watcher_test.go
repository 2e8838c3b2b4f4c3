package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestRelevant(t *testing.T) {
	cases := []struct {
		name string
		op   fsnotify.Op
		want bool
	}{
		{"photos/hero.png", fsnotify.Write, true},
		{"photos/hero.jpg", fsnotify.Create, true},
		{"photos/hero.png", fsnotify.Chmod, false},
		{"photos/notes.txt", fsnotify.Write, false},
		{"photos/.focalpick/points.jsonl", fsnotify.Write, false},
		{"photos/.focalpick", fsnotify.Create, false},
	}
	for _, tc := range cases {
		got := relevant(fsnotify.Event{Name: tc.name, Op: tc.op})
		if got != tc.want {
			t.Errorf("relevant(%s, %v) = %v, want %v", tc.name, tc.op, got, tc.want)
		}
	}
}

func TestWatchReportsImageWrites(t *testing.T) {
	dir := t.TempDir()

	var hits atomic.Int32
	w, err := Watch(dir, func() { hits.Add(1) })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "a.png"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for hits.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if hits.Load() == 0 {
		t.Fatal("expected a change callback after writing an image")
	}
}

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var hits atomic.Int32
	for i := 0; i < 10; i++ {
		d.Trigger(func() { hits.Add(1) })
	}

	time.Sleep(200 * time.Millisecond)
	if got := hits.Load(); got != 1 {
		t.Errorf("expected 1 coalesced callback, got %d", got)
	}
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var hits atomic.Int32
	d.Trigger(func() { hits.Add(1) })
	d.Cancel()

	time.Sleep(150 * time.Millisecond)
	if got := hits.Load(); got != 0 {
		t.Errorf("expected cancelled callback not to run, got %d", got)
	}
}
