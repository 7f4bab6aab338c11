package wait

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultInterval is the pause between condition checks.
const DefaultInterval = 500 * time.Millisecond

// For repeatedly evaluates cond until it returns true or timeout elapses,
// sleeping for DefaultInterval between checks.
func For(ctx context.Context, logger *slog.Logger, timeout time.Duration, cond func(context.Context) bool) bool {
	return ForInterval(ctx, logger, timeout, DefaultInterval, cond)
}

// ForInterval is For with an explicit check interval.
//
// A timeout is not an error: the loop just stops retrying and returns false.
// Callers needing a hard failure check the post-condition themselves. The
// wait also ends early when ctx is cancelled.
func ForInterval(ctx context.Context, logger *slog.Logger, timeout, interval time.Duration, cond func(context.Context) bool) bool {
	start := time.Now()

	for {
		if cond(ctx) {
			return true
		}

		elapsed := time.Since(start)
		if elapsed > timeout {
			logger.Debug("condition unmet at deadline", "elapsed", elapsed, "timeout", timeout)
			return false
		}

		logger.Debug("condition unmet, retrying", "elapsed", elapsed, "interval", interval)

		select {
		case <-ctx.Done():
			logger.Debug("wait cancelled", "elapsed", time.Since(start))
			return false
		case <-time.After(interval):
		}
	}
}

// ForPath waits for a filesystem path to appear, typically the instruments
// control socket. It watches the parent directory for create events and falls
// back to interval polling when the directory cannot be watched (it may not
// exist yet either). Same contract as For: false on timeout, no error.
func ForPath(ctx context.Context, logger *slog.Logger, timeout time.Duration, path string) bool {
	exists := func(context.Context) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	if exists(ctx) {
		return true
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return ForInterval(ctx, logger, timeout, DefaultInterval, exists)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		logger.Debug("cannot watch parent directory, polling instead", "path", path, "error", err)
		return ForInterval(ctx, logger, timeout, DefaultInterval, exists)
	}

	// The path may have appeared between the Stat and the Add.
	if exists(ctx) {
		return true
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-deadline.C:
			logger.Debug("path did not appear before deadline", "path", path, "timeout", timeout)
			return exists(ctx)
		case event, ok := <-watcher.Events:
			if !ok {
				return exists(ctx)
			}
			if event.Op&(fsnotify.Create|fsnotify.Rename) != 0 && exists(ctx) {
				return true
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return exists(ctx)
			}
		}
	}
}
