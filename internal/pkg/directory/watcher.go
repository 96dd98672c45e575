package directory

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/endorses/lippyphone/internal/pkg/logger"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events editors emit on save
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a directory file when it changes and swaps the result
// into a Store. A file that fails to parse leaves the previous directory in
// place.
type Watcher struct {
	path     string
	store    *Store
	debounce time.Duration
	onError  func(error)

	fsWatcher *fsnotify.Watcher
	mu        sync.Mutex
	running   bool
	stopChan  chan struct{}
	wg        sync.WaitGroup
}

// WatcherOption configures a Watcher
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits for events to settle
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// WithErrorHandler receives reload failures
func WithErrorHandler(fn func(error)) WatcherOption {
	return func(w *Watcher) { w.onError = fn }
}

// NewWatcher creates a watcher for path feeding store
func NewWatcher(path string, store *Store, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		path:     path,
		store:    store,
		debounce: DefaultDebounce,
		stopChan: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching. The parent directory is watched so that editors
// replacing the file by rename are followed.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return errors.New("watcher already running")
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		if cerr := fsWatcher.Close(); cerr != nil {
			logger.Error("failed to close fsnotify watcher", "error", cerr)
		}
		return err
	}
	w.fsWatcher = fsWatcher
	w.running = true

	w.wg.Add(1)
	go w.loop(ctx)

	logger.Info("Watching directory file", "path", w.path)
	return nil
}

// Stop ends watching and waits for the event loop to exit
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopChan)
	w.mu.Unlock()

	w.wg.Wait()
	if err := w.fsWatcher.Close(); err != nil {
		logger.Error("failed to close fsnotify watcher", "error", err)
	}
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	targetPath, _ := filepath.Abs(w.path)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			eventPath, _ := filepath.Abs(event.Name)
			if eventPath != targetPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.reload()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logger.Warn("fsnotify error", "error", err)
		}
	}
}

// reload parses the file and swaps it in on success
func (w *Watcher) reload() {
	d, err := Load(w.path)
	if err != nil {
		logger.Warn("Directory reload failed, keeping previous", "path", w.path, "error", err)
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	w.store.Swap(d)
	logger.Info("Directory reloaded",
		"path", w.path,
		"contacts", len(d.contacts),
		"conversations", len(d.Conversations()))
}
