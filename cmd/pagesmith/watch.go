package main

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mtholden/pagesmith/internal/config"
)

// debounceWindow batches rapid editor save bursts into a single rebuild.
const debounceWindow = 200 * time.Millisecond

// runWatch rebuilds the whole site whenever files under the content root
// change. Rebuilds are always full: a failed build logs and waits for the
// next change instead of aborting the watcher.
func runWatch(outputOverride string) error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	if outputOverride != "" {
		cfg.Output.Dir = outputOverride
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watchTree(watcher, cfg.Content.Dir); err != nil {
		return err
	}

	if err := runBuild(cfg, false); err != nil {
		slog.Error("initial build failed", "error", err)
	}
	slog.Info("watching for changes", "content", cfg.Content.Dir)

	var timer *time.Timer
	rebuild := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				// New directories need their own watches.
				_ = watchTree(watcher, event.Name)
			}
			if timer == nil {
				timer = time.AfterFunc(debounceWindow, func() { rebuild <- struct{}{} })
			} else {
				timer.Reset(debounceWindow)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "error", err)
		case <-rebuild:
			timer = nil
			if err := runBuild(cfg, false); err != nil {
				slog.Error("rebuild failed", "error", err)
			}
		}
	}
}

// watchTree registers root and every directory below it. Non-directory roots
// are ignored so Create events for plain files are cheap to pass in.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			// Skip unreadable entries; keep watching the rest.
			return nil
		}
		return watcher.Add(p)
	})
}
