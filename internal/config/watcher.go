package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single config file.
// The parent directory is watched because editors often replace files by rename.
type Watcher struct {
	watcher   *fsnotify.Watcher
	path      string
	onChanged func(path string)
	debounce  time.Duration
	closeOnce sync.Once
}

// NewWatcher creates a watcher for path; onChanged runs on the Run goroutine
func NewWatcher(path string, onChanged func(path string)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		watcher:   watcher,
		path:      abs,
		onChanged: onChanged,
		debounce:  200 * time.Millisecond,
	}, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string { return w.path }

// Run processes file system events until the context is canceled or the watcher closes.
// Bursts of events are collapsed into one callback once the file has been quiet for the
// debounce period.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		timer   *time.Timer
		settled <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			settled = timer.C

		case <-settled:
			settled = nil
			log.Printf("Config file changed: %s", w.path)
			if w.onChanged != nil {
				w.onChanged(w.path)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Config watcher error: %v", err)
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
	})
	return err
}
