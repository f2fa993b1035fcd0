package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// RulesWatcher watches the matching-rules overlay file for changes and
// notifies listeners with the reloaded overlay. A broken edit keeps the
// current overlay in place.
type RulesWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	current  *RulesOverlay
	mu       sync.RWMutex
	onChange []func(*RulesOverlay)
	logger   *zap.Logger
	stopCh   chan struct{}
}

// NewRulesWatcher loads the initial overlay and sets up the file watcher.
func NewRulesWatcher(path string, logger *zap.Logger) (*RulesWatcher, error) {
	overlay, err := LoadRules(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial rules: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch rules file: %w", err)
	}

	// Watch the directory too, for editors that save via rename.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		logger.Warn("Failed to watch rules directory", zap.Error(err))
	}

	return &RulesWatcher{
		path:    path,
		watcher: watcher,
		current: overlay,
		logger:  logger,
		stopCh:  make(chan struct{}),
	}, nil
}

// Current returns the active overlay.
func (w *RulesWatcher) Current() *RulesOverlay {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange registers a listener called after every successful reload.
// Register listeners before Start.
func (w *RulesWatcher) OnChange(handler func(*RulesOverlay)) {
	w.onChange = append(w.onChange, handler)
}

// Start begins watching for rules changes.
func (w *RulesWatcher) Start() {
	go w.watchLoop()
	w.logger.Info("Rules watcher started", zap.String("path", w.path))
}

// Stop stops the watcher.
func (w *RulesWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
	w.logger.Info("Rules watcher stopped")
}

func (w *RulesWatcher) watchLoop() {
	// Debounce so an editor's write burst triggers one reload.
	var debounceTimer *time.Timer
	debounceDuration := 100 * time.Millisecond

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, func() {
					w.handleRulesChange()
				})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Rules watcher error", zap.Error(err))
		}
	}
}

func (w *RulesWatcher) handleRulesChange() {
	w.logger.Info("Rules file changed, reloading", zap.String("path", w.path))

	overlay, err := LoadRules(w.path)
	if err != nil {
		w.logger.Error("Failed to reload rules, keeping current", zap.Error(err))
		return
	}

	w.mu.Lock()
	w.current = overlay
	w.mu.Unlock()

	for _, handler := range w.onChange {
		go handler(overlay)
	}

	w.logger.Info("Rules reloaded",
		zap.Int("groups", len(overlay.Groups)),
		zap.Int("reasons", len(overlay.Reasons)),
	)
}
