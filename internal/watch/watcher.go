package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hatethatcode/siteconf/internal/logfields"
)

// Watcher monitors the configuration file and triggers debounced change
// notifications. The containing directory is watched rather than the file
// itself so editor rename-and-replace saves are caught.
type Watcher struct {
	configPath   string
	onChange     func(context.Context)
	watcher      *fsnotify.Watcher
	mu           sync.Mutex
	stopOnce     sync.Once
	stopChan     chan struct{}
	changeChan   chan struct{}
	debounceTime time.Duration
}

// NewWatcher creates a watcher for configPath. onChange runs after the
// debounce window closes.
func NewWatcher(configPath string, onChange func(context.Context)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	return &Watcher{
		configPath:   absPath,
		onChange:     onChange,
		watcher:      fsw,
		stopChan:     make(chan struct{}),
		changeChan:   make(chan struct{}, 1),
		debounceTime: 2 * time.Second,
	}, nil
}

// Start begins monitoring the configuration file.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	configDir := filepath.Dir(w.configPath)
	if err := w.watcher.Add(configDir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", configDir, err)
	}

	slog.Info("Starting configuration watcher", logfields.ConfigPath(w.configPath))
	go w.watchLoop(ctx)
	go w.debounceLoop(ctx)
	return nil
}

// Stop stops the watcher. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		slog.Info("Stopping configuration watcher")
		close(w.stopChan)
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	})
}

func (w *Watcher) watchLoop(ctx context.Context) {
	configFile := filepath.Base(w.configPath)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != configFile {
				continue
			}
			switch {
			case event.Op.Has(fsnotify.Write), event.Op.Has(fsnotify.Create), event.Op.Has(fsnotify.Rename):
				slog.Debug("Config file change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				w.trigger()
			case event.Op.Has(fsnotify.Remove):
				slog.Warn("Config file removed", logfields.Path(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) debounceLoop(ctx context.Context) {
	timer := time.NewTimer(w.debounceTime)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-w.stopChan:
			timer.Stop()
			return
		case <-w.changeChan:
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounceTime)
			pending = true
		case <-timer.C:
			pending = false
			w.onChange(ctx)
		}
	}
}

func (w *Watcher) trigger() {
	select {
	case w.changeChan <- struct{}{}:
	default: // change already pending
	}
}
