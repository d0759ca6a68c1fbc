// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is how long [Watch] waits after the last change
// to a file before reloading it, so that a burst of writes
// results in a single reload.
var WatchDebounce = 100 * time.Millisecond

// Watch loads the lattice in the given file, calls fn with the result,
// and then calls fn again every time the file is written, until the
// context is done. The directory of the file is watched rather than the
// file itself, so that editors replacing the file by rename are seen.
// fn is called with the load error if a reload fails. Watch blocks, and
// returns nil when the context is done.
func Watch(ctx context.Context, filename string, fn func(*Lattice, error)) error {
	filename = filepath.Clean(filename)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("lattice.Watch: creating watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(filename)); err != nil {
		return fmt.Errorf("lattice.Watch: watching %s: %w", filename, err)
	}

	fn(Open(filename))

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filename || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("lattice file changed", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(WatchDebounce)
			} else {
				timer.Reset(WatchDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			fn(Open(filename))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("lattice watcher error", "err", err)
		}
	}
}
