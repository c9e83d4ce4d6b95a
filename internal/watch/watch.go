// Package watch turns file system changes into trigger events.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Kind identifies what a changed path is.
type Kind int

const (
	// DocumentChanged fires when a watched document is written, replaced or removed.
	DocumentChanged Kind = iota
	// ConfigChanged fires when a watched settings file changes.
	ConfigChanged
)

func (k Kind) String() string {
	switch k {
	case DocumentChanged:
		return "document"
	case ConfigChanged:
		return "config"
	default:
		return "unknown"
	}
}

// Event is a debounced change notification.
type Event struct {
	Kind Kind
	Path string
	// Removed is true when the last change in the burst removed the file.
	Removed bool
}

// Options configures a Watcher.
type Options struct {
	// Debounce is the quiet period after the last change before an event fires.
	// Default: 100ms
	Debounce time.Duration
	// Logger receives debug output. Nil discards.
	Logger *log.Logger
}

// DefaultOptions returns sensible default watcher options.
func DefaultOptions() Options {
	return Options{Debounce: 100 * time.Millisecond}
}

// Watcher watches the parent directories of registered files, because
// editors commonly replace files by renaming over them.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	logger   *log.Logger

	mu      sync.Mutex
	targets map[string]Kind
	dirs    map[string]bool
	pending map[string]*time.Timer
	removed map[string]bool

	fire   chan string
	events chan Event
	done   chan struct{}
	once   sync.Once
}

// New creates a Watcher. Call Run to start delivering events.
func New(opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultOptions().Debounce
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		fs:       fsw,
		debounce: opts.Debounce,
		logger:   opts.Logger,
		targets:  make(map[string]Kind),
		dirs:     make(map[string]bool),
		pending:  make(map[string]*time.Timer),
		removed:  make(map[string]bool),
		fire:     make(chan string, 16),
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}, nil
}

// AddDocument registers a document path.
func (w *Watcher) AddDocument(path string) error {
	return w.add(path, DocumentChanged)
}

// AddConfig registers a settings file. A missing parent directory is not an
// error: the file simply cannot change until it exists.
func (w *Watcher) AddConfig(path string) error {
	if path == "" {
		return nil
	}
	err := w.add(path, ConfigChanged)
	if errors.Is(err, os.ErrNotExist) {
		w.logger.Debug("config directory missing, not watching", "path", path)
		return nil
	}
	return err
}

func (w *Watcher) add(path string, kind Kind) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.targets[abs]; ok {
		w.targets[abs] = kind
		return nil
	}
	if !w.dirs[dir] {
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.dirs[dir] = true
	w.targets[abs] = kind
	w.logger.Debug("watching", "path", abs, "kind", kind)
	return nil
}

// Events returns the channel of debounced events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Run delivers events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handle(ev)

		case path := <-w.fire:
			if ev, ok := w.flush(path); ok {
				select {
				case w.events <- ev:
				case <-ctx.Done():
					return nil
				}
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "err", err)
		}
	}
}

// Close releases the underlying watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.mu.Lock()
		for p, t := range w.pending {
			t.Stop()
			delete(w.pending, p)
		}
		w.mu.Unlock()
		err = w.fs.Close()
	})
	return err
}

// handle schedules (or reschedules) a debounced event for a watched target.
func (w *Watcher) handle(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	path := filepath.Clean(ev.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.targets[path]; !ok {
		return
	}
	w.removed[path] = ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 && !exists(path)

	if t := w.pending[path]; t != nil {
		t.Reset(w.debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		select {
		case w.fire <- path:
		case <-w.done:
		}
	})
}

// flush turns a fired timer into an event.
func (w *Watcher) flush(path string) (Event, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.pending, path)
	kind, ok := w.targets[path]
	if !ok {
		return Event{}, false
	}
	removed := w.removed[path]
	delete(w.removed, path)

	w.logger.Debug("change", "path", path, "kind", kind, "removed", removed)
	return Event{Kind: kind, Path: path, Removed: removed}, true
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
