// Package watch provides live reload for a schedule log file. Editors
// and trackers often replace the file atomically, so the parent
// directory is watched and events are filtered by name.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces bursts of write events into one reload
const debounceDelay = 200 * time.Millisecond

// Watcher watches a single log file and reports change notifications
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string // absolute path of the watched file
	done      chan struct{}

	// Events receives one notification per (debounced) file change
	Events chan struct{}

	// Errors receives watcher errors
	Errors chan error
}

// New creates a watcher for the given log file. The file itself does
// not have to exist yet; its directory does.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		path:      abs,
		done:      make(chan struct{}),
		Events:    make(chan struct{}, 1),
		Errors:    make(chan error, 1),
	}, nil
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// watchLoop forwards relevant fsnotify events, debounced
func (w *Watcher) watchLoop() {
	var debounce *time.Timer

	for {
		select {
		case <-w.done:
			if debounce != nil {
				debounce.Stop()
			}
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, w.notify)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}

// relevant reports whether the event concerns the watched file
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// notify delivers one change notification without blocking
func (w *Watcher) notify() {
	select {
	case <-w.done:
	case w.Events <- struct{}{}:
	default:
	}
}
