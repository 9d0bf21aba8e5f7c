package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"github.com/syssam/hassgen/internal/logger"
)

// debounce collapses the burst of events editors emit when saving a file.
const debounce = 100 * time.Millisecond

// watchFile calls run every time path is written or recreated, until ctx is
// done. Failures of run are logged and do not stop watching.
func watchFile(ctx context.Context, path string, run func(context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer w.Close()

	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "watch %s", path)
	}
	target := filepath.Clean(path)
	logger.Logger.Infow("watching metadata", "file", path)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = time.After(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Logger.Warnw("watch error", "error", err)
		case <-pending:
			pending = nil
			if err := run(ctx); err != nil {
				logger.Logger.Errorw("regeneration failed", "error", err)
				continue
			}
			logger.Logger.Infow("regenerated", "file", path)
		}
	}
}
