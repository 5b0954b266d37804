package scene

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports geometry files that change on disk. Parent directories are
// watched so files replaced by rename are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]string // cleaned absolute path -> path as given
	changed chan string
	done    chan struct{}
}

// NewWatcher starts watching paths. Changed paths are delivered as given.
func NewWatcher(paths []string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("asset watcher: %w", err)
	}
	w := &Watcher{
		watcher: fw,
		files:   make(map[string]string, len(paths)),
		changed: make(chan string, 16),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("asset watcher: %w", err)
		}
		w.files[abs] = p
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("asset watcher: watch %s: %w", dir, err)
		}
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			path, ok := w.files[filepath.Clean(event.Name)]
			if !ok {
				continue
			}
			select {
			case w.changed <- path:
			default:
				slog.Debug("asset change dropped, queue full", "path", path)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("asset watcher", "err", err)
		}
	}
}

// Changed delivers the path of every modified file. Drain it from the thread
// that owns the GL context.
func (w *Watcher) Changed() <-chan string { return w.changed }

// Pending drains every queued change without blocking, collapsing duplicates.
func (w *Watcher) Pending() []string {
	var out []string
	seen := make(map[string]bool)
	for {
		select {
		case path := <-w.changed:
			if !seen[path] {
				seen[path] = true
				out = append(out, path)
			}
		default:
			return out
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
