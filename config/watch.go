// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/gridview"
)

// Watch reloads the configuration file whenever it is written or replaced
// and passes every valid result to fn. Invalid files are logged and
// skipped. Watch blocks until ctx is done and returns ctx.Err().
//
// The file's directory is watched, so editors that save by renaming a
// temporary file are handled.
func Watch(ctx context.Context, path string, fn func(Config)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	log := gridview.Logger()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return ctx.Err()
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			c, err := Load(abs)
			if err != nil {
				log.Warn("config: reload failed", "path", abs, "err", err)
				continue
			}
			log.Info("config: reloaded", "path", abs)
			fn(c)

		case err, ok := <-w.Errors:
			if !ok {
				return ctx.Err()
			}
			log.Warn("config: watch error", "path", abs, "err", err)
		}
	}
}
