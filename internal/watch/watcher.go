package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"advanced-notepad/internal/logger"

	"github.com/fsnotify/fsnotify"
)

const (
	component     = "FileWatcher"
	debounceDelay = 100 * time.Millisecond
)

type ChangeKind int

const (
	Modified ChangeKind = iota
	Removed
)

func (k ChangeKind) String() string {
	if k == Removed {
		return "removed"
	}
	return "modified"
}

type Event struct {
	Path string
	Kind ChangeKind
}

// FileWatcher reports changes other programs make to the file being edited.
// It watches the parent directory so that editors which save by renaming a
// temporary file over the original are still seen. onChange runs on the
// watcher goroutine, bursts of events are coalesced into one call.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   logger.Logger
	onChange func(Event)

	mu      sync.Mutex
	path    string
	dir     string
	pending *Event
	timer   *time.Timer

	done chan struct{}
	wg   sync.WaitGroup
}

func New(log logger.Logger, onChange func(Event)) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &FileWatcher{
		watcher:  watcher,
		logger:   log,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Watch switches the watcher to path; an empty path stops watching
func (w *FileWatcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		path = abs
	}

	if path == w.path {
		return nil
	}

	dir := filepath.Dir(path)
	if w.dir != "" && w.dir != dir {
		if err := w.watcher.Remove(w.dir); err != nil {
			w.logger.Debug(component, "failed to remove watch", map[string]interface{}{
				"dir":   w.dir,
				"error": err.Error(),
			})
		}
		w.dir = ""
	}

	w.path = path
	if path == "" {
		return nil
	}

	if w.dir != dir {
		if err := w.watcher.Add(dir); err != nil {
			w.path = ""
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.dir = dir
	}

	w.logger.Debug(component, "watching file", map[string]interface{}{
		"path": path,
	})
	return nil
}

// Path returns the absolute path currently watched
func (w *FileWatcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

func (w *FileWatcher) Shutdown() {
	select {
	case <-w.done:
		return
	default:
		close(w.done)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	_ = w.watcher.Close()
	w.wg.Wait()
	w.logger.Debug(component, "watcher stopped", nil)
}

func (w *FileWatcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(component, err, nil)
		}
	}
}

func (w *FileWatcher) handle(event fsnotify.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.path == "" || filepath.Clean(event.Name) != w.path {
		return
	}

	var kind ChangeKind
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		kind = Removed
	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		kind = Modified
	default:
		return
	}

	w.pending = &Event{Path: w.path, Kind: kind}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDelay, w.flush)
}

func (w *FileWatcher) flush() {
	w.mu.Lock()
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()

	if pending == nil {
		return
	}

	select {
	case <-w.done:
		return
	default:
	}

	w.onChange(*pending)
}
