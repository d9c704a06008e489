package catalog

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"macrolog/logging"
)

// Watcher reloads the catalog when its file is written and hands the new
// records to the onReload callback. The callback runs on the watcher
// goroutine; callers are expected to forward it into their own event loop.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onReload func([]Food)
}

// NewWatcher watches the directory containing path. Watching the directory
// rather than the file survives editors that replace the file on save.
func NewWatcher(path string, onReload func([]Food)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{path: path, watcher: w, onReload: onReload}, nil
}

// Watch blocks processing filesystem events until Close is called.
func (w *Watcher) Watch() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			foods, err := Load(w.path)
			if err != nil {
				logging.Error("reloading catalog", zap.Error(err))
				continue
			}
			logging.Info("catalog reloaded", zap.Int("foods", len(foods)))
			w.onReload(foods)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Error("catalog watcher", zap.Error(err))
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
