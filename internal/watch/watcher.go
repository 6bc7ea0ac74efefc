package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yacobolo/breakout/internal/logger"
)

// Options configures Run.
type Options struct {
	// Paths are the files to watch. Their directories are watched so that
	// editors that replace files on save are still seen.
	Paths    []string
	Debounce time.Duration
	Logger   *logger.Logger
}

// Run calls onChange after every settled burst of writes to the watched
// files, until ctx is done. onChange never runs concurrently with itself,
// and never runs after Run has returned.
func Run(ctx context.Context, opts Options, onChange func()) error {
	if len(opts.Paths) == 0 {
		return fmt.Errorf("watch: no paths")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]bool, len(opts.Paths))
	dirs := make(map[string]bool)
	for _, p := range opts.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	var (
		mu      sync.Mutex
		stopped bool
	)
	debouncer := NewDebouncer(opts.Debounce)
	// Run returns only after a rebuild already in progress has finished.
	defer func() {
		debouncer.Cancel()
		mu.Lock()
		stopped = true
		mu.Unlock()
	}()

	opts.Logger.With("paths", opts.Paths).Info("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, targets) {
				continue
			}
			opts.Logger.With("file", event.Name).Debug("change detected")
			debouncer.Trigger(func() {
				mu.Lock()
				defer mu.Unlock()
				if stopped || ctx.Err() != nil {
					return
				}
				onChange()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			opts.Logger.Error(err, "watch error")
		}
	}
}

// relevant reports whether event changes the content of a watched file
func relevant(event fsnotify.Event, targets map[string]bool) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return targets[abs]
}
