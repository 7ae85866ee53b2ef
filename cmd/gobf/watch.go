package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the event bursts editors produce on save.
const watchDebounce = 100 * time.Millisecond

// watchAndRun runs path once, then re-runs it after every on-disk change
// until ctx is done. Run failures are reported but do not stop the watch.
func watchAndRun(ctx context.Context, path string, s settings) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// watch the directory: editors typically replace the file, which drops
	// a watch placed on the file itself
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	rerun := func() {
		if err := runFile(ctx, path, s); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		}
	}
	rerun()

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			evAbs, _ := filepath.Abs(ev.Name)
			if evAbs != abs || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, rerun)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "ERROR: watch: %+v\n", err)
		}
	}
}
