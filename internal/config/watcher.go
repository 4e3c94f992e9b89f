package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"dynamichat/internal/logging"
)

// Watcher watches the config file and reloads it on change.
// Editors often replace files via rename, so the parent directory is
// watched rather than the file itself.
type Watcher struct {
	path     string
	onReload func(*Config)

	fsw      *fsnotify.Watcher
	mu       sync.Mutex
	debounce *time.Timer
	done     chan struct{}
	closed   bool
}

// debounceDelay coalesces editor write bursts into a single reload.
const debounceDelay = 250 * time.Millisecond

// NewWatcher creates a watcher for the given config path.
// onReload is called with the freshly loaded config after each change.
func NewWatcher(path string, onReload func(*Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:     path,
		onReload: onReload,
		fsw:      fsw,
		done:     make(chan struct{}),
	}

	go w.loop()

	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryBoot).Warn("config watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		logging.Get(logging.CategoryBoot).Warn("config reload failed: %v", err)
		return
	}

	// Keep logging settings in sync before notifying the application.
	if err := logging.ReloadConfig(); err != nil {
		logging.Get(logging.CategoryBoot).Warn("logging reload failed: %v", err)
	}

	logging.Boot("config reloaded from %s", w.path)

	if w.onReload != nil {
		w.onReload(cfg)
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	return w.fsw.Close()
}
