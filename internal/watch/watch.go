// Package watch re-runs pattern extraction whenever a key file changes.
//
// It wraps an fsnotify watcher with write debouncing, so editors that save
// in several bursts trigger a single re-extraction, and survives the
// remove/rename dance most editors and log rotators perform when replacing
// a file.
package watch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period applied when Options.Debounce is unset.
const DefaultDebounce = 500 * time.Millisecond

// Options configures the watcher behavior.
type Options struct {
	Path     string        // Key file to watch
	Debounce time.Duration // Quiet period after the last write before re-running
	OnChange func() error  // Called once at startup and after each settled change
}

// Watcher re-runs a callback when the watched file settles after changes.
type Watcher struct {
	opts    Options
	watcher *fsnotify.Watcher
}

// New creates a new Watcher with the given options.
func New(opts Options) *Watcher {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	return &Watcher{opts: opts}
}

// Run performs one initial callback invocation, then blocks watching the
// file until ctx is cancelled or an error occurs.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.opts.OnChange(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	w.watcher = watcher
	defer watcher.Close()

	if err := watcher.Add(w.opts.Path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.opts.Path, err)
	}

	return w.watch(ctx)
}

// watch is the event loop: writes arm the debounce timer, the timer firing
// runs the callback.
func (w *Watcher) watch(ctx context.Context) error {
	debounce := time.NewTimer(w.opts.Debounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			if err := w.opts.OnChange(); err != nil {
				return err
			}

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed unexpectedly")
			}
			rearm, err := w.handleEvent(ctx, event)
			if err != nil {
				return err
			}
			if rearm {
				debounce.Reset(w.opts.Debounce)
				pending = true
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// handleEvent processes a file system event and reports whether the
// debounce timer should be re-armed.
func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) (bool, error) {
	switch {
	case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
		return true, nil

	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		// Editors and rotators replace the file rather than writing in
		// place; wait for the new one and watch it instead.
		if err := w.awaitReplacement(ctx); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

// awaitReplacement polls for the watched path to reappear after a
// remove/rename and re-adds it to the watcher.
func (w *Watcher) awaitReplacement(ctx context.Context) error {
	timeout := time.After(10 * time.Second)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timeout:
			return fmt.Errorf("timeout waiting for %s to reappear", w.opts.Path)
		case <-ticker.C:
			if _, err := os.Stat(w.opts.Path); err != nil {
				continue
			}
			if err := w.watcher.Add(w.opts.Path); err != nil {
				return fmt.Errorf("failed to watch replaced file: %w", err)
			}
			return nil
		}
	}
}
