package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce coalesces the burst of events editors emit on save.
const debounce = 200 * time.Millisecond

// watch re-runs the update whenever the source document changes, until
// interrupted. The parent directory is watched rather than the file itself:
// most editors replace the file on save, which would drop a file-level
// watch.
func watch(flags *siteFlags, paths runPaths) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	sourceAbs, err := filepath.Abs(paths.source)
	if err != nil {
		return fmt.Errorf("resolving source path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(sourceAbs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(sourceAbs), err)
	}

	// Initial run so the page reflects the current source immediately.
	if err := updateOnce(ctx, flags, paths); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if !flags.quiet {
		fmt.Fprintf(os.Stderr, "Watching %s (interrupt to stop)\n", paths.source)
	}

	var timer *time.Timer
	runs := make(chan struct{}, 1)
	schedule := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			select {
			case runs <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			changed, _ := filepath.Abs(event.Name)
			if changed != sourceAbs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				schedule()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-runs:
			if err := updateOnce(ctx, flags, paths); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
	}
}
