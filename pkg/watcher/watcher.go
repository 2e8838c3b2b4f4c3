package watcher

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"focalpick/pkg/loader"
	"focalpick/pkg/model"
)

// MediaWatcher watches a media directory and reports changes to image files,
// debounced so bulk operations (exports, sync tools) trigger one reload.
// Changes under the sidecar directory are ignored: those are our own writes.
type MediaWatcher struct {
	fsw       *fsnotify.Watcher
	debouncer *Debouncer
	done      chan struct{}
}

// Watch starts watching dir and invokes onChange (debounced) whenever a
// supported image file is created, written, renamed or removed. Call Close
// to stop.
func Watch(dir string, onChange func()) (*MediaWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &MediaWatcher{
		fsw:       fsw,
		debouncer: NewDebouncer(0),
		done:      make(chan struct{}),
	}

	go w.loop(onChange)
	return w, nil
}

func (w *MediaWatcher) loop(onChange func()) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			w.debouncer.Trigger(onChange)
		case _, ok := <-w.fsw.Errors:
			// Watch errors are transient on most platforms; the fallback
			// is a manual reload keybinding in the UI.
			if !ok {
				return
			}
		}
	}
}

// Close stops the watcher and cancels any pending callback.
func (w *MediaWatcher) Close() error {
	close(w.done)
	w.debouncer.Cancel()
	return w.fsw.Close()
}

// relevant reports whether a filesystem event concerns a supported image
// file outside the sidecar directory.
func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	path := filepath.ToSlash(event.Name)
	if strings.Contains(path, "/"+loader.SidecarDir+"/") || strings.HasSuffix(path, "/"+loader.SidecarDir) {
		return false
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	_, ok := model.FormatForExt(ext)
	return ok
}
