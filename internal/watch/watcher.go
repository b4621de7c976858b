// Package watch reports changes to an input file.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultInterval is how often the file is polled in case an event was missed.
const DefaultInterval = 500 * time.Millisecond

// Notifier signals that a file changed.
type Notifier interface {
	// Changes receives a value after the file changed. Bursts of changes are
	// coalesced into one value.
	Changes() <-chan struct{}
	Errors() <-chan error
	Close() error
}

// Watcher monitors a file for changes
type Watcher struct {
	watcher  *fsnotify.Watcher
	fs       FileSystem
	filePath string
	interval time.Duration
	last     fingerprint

	changes chan struct{}
	errors  chan error
	done    chan struct{}
}

type fingerprint struct {
	size    int64
	modTime time.Time
	exists  bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithFileSystem replaces the file system used for polling.
func WithFileSystem(fs FileSystem) Option {
	return func(w *Watcher) { w.fs = fs }
}

// WithInterval sets the polling interval.
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) { w.interval = d }
}

// New starts watching filePath. The directory is watched rather than the
// file so that editors replacing the file are noticed.
func New(filePath string, opts ...Option) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsWatcher.Add(filepath.Dir(filePath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fsWatcher,
		fs:       OSFileSystem{},
		filePath: filepath.Clean(filePath),
		interval: DefaultInterval,
		changes:  make(chan struct{}, 1),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.last = w.stat()

	go w.watch()

	return w, nil
}

// watch runs the file watching loop
func (w *Watcher) watch() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.changes)
	defer close(w.errors)

	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			// Polling as backup
			w.check()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) == w.filePath &&
				event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				w.check()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// check compares the file with the last fingerprint and signals a change.
func (w *Watcher) check() {
	current := w.stat()
	if current == w.last {
		return
	}
	w.last = current
	if !current.exists {
		// Removed files are reported once they come back.
		return
	}
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

func (w *Watcher) stat() fingerprint {
	info, err := w.fs.Stat(w.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			w.sendError(err)
		}
		return fingerprint{}
	}
	return fingerprint{size: info.Size(), modTime: info.ModTime(), exists: true}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}

// Changes returns a channel signalled after each change of the file
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching the file
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		// Already closed
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}

// TestWatcher is a helper for testing that provides direct control over channels
type TestWatcher struct {
	changes chan struct{}
	errors  chan error
	closed  bool
	mu      sync.Mutex
}

// NewTestWatcher creates a test watcher with controllable channels
func NewTestWatcher() *TestWatcher {
	return &TestWatcher{
		changes: make(chan struct{}, 1),
		errors:  make(chan error, 10),
	}
}

func (tw *TestWatcher) Changes() <-chan struct{} { return tw.changes }
func (tw *TestWatcher) Errors() <-chan error     { return tw.errors }

func (tw *TestWatcher) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return nil
	}
	tw.closed = true
	close(tw.changes)
	close(tw.errors)
	return nil
}

// Trigger signals a change. It does nothing after Close.
func (tw *TestWatcher) Trigger() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return
	}
	select {
	case tw.changes <- struct{}{}:
	default:
	}
}

// SendError sends a test error to the watcher. It drops err when the buffer
// is full and does nothing after Close.
func (tw *TestWatcher) SendError(err error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return
	}
	select {
	case tw.errors <- err:
	default:
	}
}
