package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/vk/sceneforge/internal/ctxlog"
	"github.com/vk/sceneforge/internal/engine"
	"github.com/vk/sceneforge/internal/fsutil"
	"github.com/vk/sceneforge/internal/hcl_adapter"
	"github.com/vk/sceneforge/internal/reconcile"
)

// watchDebounce coalesces the burst of events editors emit on save.
const watchDebounce = 200 * time.Millisecond

// watch rebuilds the scene after every edit of its files until ctx is
// cancelled. A scene that fails to reload leaves the live tree untouched.
func (a *App) watch(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Close()

	dirs, err := watchDirs(a.config.ScenePath)
	if err != nil {
		return err
	}
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("failed to watch %s: %w", d, err)
		}
	}
	logger.Info("Watching scene for changes.", "path", a.config.ScenePath, "dirs", len(dirs))

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch stopped.")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() && !fsutil.IsHidden(ev.Name) {
					if err := w.Add(ev.Name); err != nil {
						logger.Warn("Failed to watch new directory.", "dir", ev.Name, "error", err)
					}
				}
			}
			if !a.watches(ev.Name) || ev.Has(fsnotify.Chmod) {
				continue
			}
			logger.Debug("Scene file event.", "event", ev.String())
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error.", "error", err)

		case <-fire:
			fire = nil
			if err := a.Reload(ctx); err != nil {
				if errors.Is(err, engine.ErrContractViolation) {
					return err
				}
				logger.Error("Reload failed, keeping the previous scene.", "error", err)
			}
		}
	}
}

// watches reports whether an event on name concerns the scene.
func (a *App) watches(name string) bool {
	if fsutil.IsHidden(name) || filepath.Ext(name) != hcl_adapter.FileExtension {
		return false
	}
	if info, err := os.Stat(a.config.ScenePath); err == nil && !info.IsDir() {
		return filepath.Clean(name) == filepath.Clean(a.config.ScenePath)
	}
	return true
}

// watchDirs lists the directories to subscribe to. A single scene file is
// watched through its directory so editors that replace the file on save
// are still seen.
func watchDirs(scenePath string) ([]string, error) {
	info, err := os.Stat(scenePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat scene path: %w", err)
	}
	if !info.IsDir() {
		return []string{filepath.Dir(scenePath)}, nil
	}

	var dirs []string
	err = filepath.WalkDir(scenePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != scenePath && fsutil.IsHidden(path) {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list scene directories: %w", err)
	}
	return dirs, nil
}

// Reload reads the scene files again, reconciles them into the live tree
// and runs a pass when anything changed. Overrides are applied to the
// reloaded scene first so they survive edits of the files.
func (a *App) Reload(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := a.logger

	fresh, err := a.loadScene(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload scene: %w", err)
	}
	for _, o := range a.overrides {
		if _, err := o.Apply(fresh); err != nil {
			logger.Warn("Override no longer applies.", "override", o.String(), "error", err)
		}
	}
	if err := hcl_adapter.Validate(fresh); err != nil {
		return fmt.Errorf("reloaded scene is invalid after overrides: %w", err)
	}

	a.mu.Lock()
	stats, err := reconcile.Merge(ctx, a.root, fresh)
	a.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to reconcile scene: %w", err)
	}
	if !stats.Changed() {
		logger.Info("Scene files changed but the scene did not.")
		return nil
	}
	logger.Info("Scene reloaded.", "added", len(stats.Added), "removed", len(stats.Removed), "updated", len(stats.Updated), "reordered", len(stats.Reordered))

	_, err = a.Pass(ctx)
	return err
}
