package assets

import (
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher accumulates filesystem changes under an asset root. Change
// notifications arrive on a background goroutine; the game drains them on
// the tick thread with Take, so reload work stays single-threaded.
type Watcher struct {
	root string
	fsw  *fsnotify.Watcher
	log  zerolog.Logger

	mu    sync.Mutex
	dirty map[string]struct{}
}

// NewWatcher watches the asset root and all its subdirectories.
func NewWatcher(root string, log zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		root:  root,
		fsw:   fsw,
		log:   log,
		dirty: make(map[string]struct{}),
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			rel, err := filepath.Rel(w.root, event.Name)
			if err != nil {
				continue
			}
			rel = filepath.ToSlash(rel)

			w.mu.Lock()
			w.dirty[rel] = struct{}{}
			w.mu.Unlock()

			w.log.Debug().Str("asset", rel).Msg("asset changed")

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("asset watcher error")
		}
	}
}

// Take drains and returns the set of changed asset paths (relative to the
// root, slash-separated, sorted). Returns nil when nothing changed.
func (w *Watcher) Take() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.dirty) == 0 {
		return nil
	}

	changed := make([]string, 0, len(w.dirty))
	for rel := range w.dirty {
		changed = append(changed, rel)
	}
	clear(w.dirty)

	sort.Strings(changed)
	return changed
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
