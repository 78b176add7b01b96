// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Reloads a configuration file when it changes on disk and
//              notifies registered handlers with the old and new values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching
// - 2026-10-15 v0.2.0: fsnotify with debounce; last good config kept on error

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	gzerror "github.com/bmc/grizzled-go/core/error"
	gzlog "github.com/bmc/grizzled-go/core/log"
)

// DefaultDebounce is how long the watcher waits after the last file event
// before reloading.
const DefaultDebounce = 100 * time.Millisecond

// ChangeHandler is called when configuration changes are detected
type ChangeHandler func(oldConfig, newConfig *Configuration)

// Watcher holds the current configuration of a file and replaces it when the
// file changes. A reload that fails leaves the previous configuration in
// place.
type Watcher struct {
	path     string
	opts     Options
	logger   *gzlog.Logger
	debounce time.Duration

	mu       sync.RWMutex
	current  *Configuration
	handlers []ChangeHandler

	fsw       *fsnotify.Watcher
	stopCh    chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewWatcher loads path and returns a watcher for it. Call Start to begin
// watching.
func NewWatcher(path string, opts Options) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, gzerror.Wrap(err, "failed to resolve config path").
			WithCode(gzerror.CodeIOError).
			WithOperation("config.NewWatcher").
			WithDetail("path", path)
	}

	cfg, err := LoadWithOptions(abs, opts)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = gzlog.GetDefault()
	}
	return &Watcher{
		path:     abs,
		opts:     opts,
		logger:   logger.WithName("config.watch").WithField("path", abs),
		debounce: DefaultDebounce,
		current:  cfg,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// WithDebounce sets the debounce interval. It must be called before Start.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Current returns the most recently loaded configuration.
func (w *Watcher) Current() *Configuration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange registers a handler called after each successful reload.
func (w *Watcher) OnChange(handler ChangeHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start begins watching. The directory holding the file is watched so that
// editors replacing the file by rename are noticed. Watching stops when ctx
// is done or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return gzerror.Wrap(err, "failed to create watcher").
			WithCode(gzerror.CodeIOError).
			WithOperation("config.Watcher.Start")
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return gzerror.Wrap(err, "failed to watch directory").
			WithCode(gzerror.CodeIOError).
			WithOperation("config.Watcher.Start").
			WithDetail("dir", filepath.Dir(w.path))
	}

	w.fsw = fsw
	w.logger.Info("watching configuration")
	go w.watchLoop(ctx)
	return nil
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer close(w.done)
	defer w.fsw.Close()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("stopping watcher (context cancelled)")
			return

		case <-w.stopCh:
			w.logger.Debug("stopping watcher (stop signal)")
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(w.debounce)

		case <-pending:
			pending = nil
			if err := w.Reload(); err != nil {
				w.logger.WarnWithErr("reload failed, keeping previous configuration", err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.ErrorWithErr("watcher error", err)
		}
	}
}

// Reload loads the file again and, on success, installs the result and
// calls the change handlers.
func (w *Watcher) Reload() error {
	cfg, err := LoadWithOptions(w.path, w.opts)
	if err != nil {
		return err
	}

	w.mu.Lock()
	old := w.current
	w.current = cfg
	handlers := make([]ChangeHandler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	w.logger.Info("configuration reloaded", gzlog.Field("sections", len(cfg.sections)))
	for _, handler := range handlers {
		handler(old, cfg)
	}
	return nil
}

// Close stops watching and waits for the watch loop to exit.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.stopCh)
		if w.fsw != nil {
			<-w.done
		}
	})
	return nil
}
