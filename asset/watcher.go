// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDelay is how long a [Watcher] waits after the last write
// event before invoking its callback. Editors and atomic-save tools
// produce bursts of events per save.
var DebounceDelay = 100 * time.Millisecond

// Watcher invokes a callback when an asset file changes on disk,
// for live reload of serialized data during development.
type Watcher struct {
	fw       *fsnotify.Watcher
	filename string
	onChange func()

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// Watch starts watching the given file, calling the given function
// after each change settles. The watch is on the file's directory,
// since editors typically save by renaming a temporary file over the
// original, which drops a watch held on the file itself.
func Watch(filename string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{fw: fw, filename: abs, onChange: onChange, done: make(chan struct{})}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !w.matches(ev) {
				continue
			}
			w.bump()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			slog.Error("asset: watch error", "file", w.filename, "err", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) matches(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return name == w.filename
}

// bump restarts the debounce timer.
func (w *Watcher) bump() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(DebounceDelay, w.onChange)
}

// Close stops watching. The callback will not be invoked after
// Close returns, except by a debounce timer already in flight.
func (w *Watcher) Close() error {
	close(w.done)
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fw.Close()
}
