// Package watch triggers documentation rebuilds when crate sources change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/cratedoc/internal/logfields"
)

// RebuildFunc runs one full documentation build.
type RebuildFunc func(ctx context.Context) error

// Watcher monitors source directories and schedules debounced rebuilds.
type Watcher struct {
	paths        []string
	debounceTime time.Duration
	rebuild      RebuildFunc
	watcher      *fsnotify.Watcher
}

// New creates a watcher over the given directories. Rebuilds are coalesced:
// a burst of events within the debounce window triggers a single rebuild.
func New(paths []string, debounce time.Duration, rebuild RebuildFunc) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		paths:        paths,
		debounceTime: debounce,
		rebuild:      rebuild,
		watcher:      fsWatcher,
	}, nil
}

// Run watches until the context is cancelled. Rebuild failures are logged and
// watching continues; only watcher setup errors are fatal.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	for _, path := range w.paths {
		if err := w.addRecursive(path); err != nil {
			return err
		}
	}

	slog.Info("Watching for source changes", slog.Any("paths", w.paths), slog.Duration("debounce", w.debounceTime))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping source watcher")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			// New subdirectories must be watched as well.
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(event.Name); err != nil {
						slog.Warn("Failed to watch new directory", logfields.Path(event.Name), logfields.Error(err))
					}
				}
			}

			slog.Debug("Source change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
			pending = time.After(w.debounceTime)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Source watcher error", logfields.Error(err))

		case <-pending:
			pending = nil
			if err := w.rebuild(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				slog.Error("Rebuild failed, continuing to watch", logfields.Error(err))
			}
		}
	}
}

// relevant filters out chmod noise and editor artifacts.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	return true
}

// addRecursive registers path and every directory beneath it.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}
