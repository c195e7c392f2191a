// Package watcher reports content changes of individual files.
//
// Kernel attribute files such as a backlight's brightness do not always raise
// inotify events, so every watched file is also re-read on a fixed interval.
// An event is emitted only when the content actually differs from the last
// content seen.
package watcher

import (
	"crypto/sha256"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is used when New is given a non-positive interval.
const DefaultPollInterval = 100 * time.Millisecond

// Event represents a file whose content changed.
type Event struct {
	Path      string
	Hash      [32]byte
	Size      int64
	Timestamp time.Time
}

// Watcher monitors files for content changes.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	paths     []string
	interval  time.Duration

	// path -> hash of the last content seen
	state   map[string][32]byte
	stateMu sync.Mutex

	events chan Event
	errors chan error

	done chan struct{}
	wg   sync.WaitGroup
}

// New creates a watcher for the given files.
func New(paths []string, interval time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		paths:     paths,
		interval:  interval,
		state:     make(map[string][32]byte),
		events:    make(chan Event, 16),
		errors:    make(chan error, 10),
		done:      make(chan struct{}),
	}

	return w, nil
}

// Events returns the channel of change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Start records the current content of every path and begins watching.
func (w *Watcher) Start() error {
	for i, path := range w.paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		w.paths[i] = absPath

		hash, _, err := HashFile(absPath)
		if err != nil {
			return err
		}
		w.stateMu.Lock()
		w.state[absPath] = hash
		w.stateMu.Unlock()

		// Some pseudo filesystems refuse inotify watches; polling still
		// covers those files.
		if err := w.fsWatcher.Add(absPath); err != nil {
			w.report(err)
		}
	}

	w.wg.Add(2)
	go w.eventLoop()
	go w.pollLoop()

	return nil
}

// Stop shuts down the watcher and closes the event and error channels.
func (w *Watcher) Stop() error {
	close(w.done)
	w.wg.Wait()
	close(w.events)
	close(w.errors)
	return w.fsWatcher.Close()
}

func (w *Watcher) eventLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.check(event.Name, time.Now())

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *Watcher) pollLoop() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return

		case now := <-ticker.C:
			for _, path := range w.paths {
				w.check(path, now)
			}
		}
	}
}

// check re-reads path and emits an event if its content changed.
// The file is hashed without holding the lock.
func (w *Watcher) check(path string, now time.Time) {
	hash, size, err := HashFile(path)
	if err != nil {
		w.report(err)
		return
	}

	w.stateMu.Lock()
	defer w.stateMu.Unlock()

	last, tracked := w.state[path]
	if !tracked || last == hash {
		return
	}
	w.state[path] = hash

	event := Event{
		Path:      path,
		Hash:      hash,
		Size:      size,
		Timestamp: now,
	}
	select {
	case w.events <- event:
	default:
		// A pending event already tells the consumer to re-read.
	}
}

func (w *Watcher) report(err error) {
	select {
	case w.errors <- err:
	default:
	}
}

// HashFile computes the SHA-256 hash of a file using streaming.
func HashFile(path string) ([32]byte, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return [32]byte{}, 0, err
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return [32]byte{}, 0, err
	}

	var hash [32]byte
	copy(hash[:], h.Sum(nil))
	return hash, size, nil
}

// WatchedPaths returns the list of paths being watched.
func (w *Watcher) WatchedPaths() []string {
	return w.paths
}

// TrackedFiles returns the current number of tracked files.
func (w *Watcher) TrackedFiles() int {
	w.stateMu.Lock()
	defer w.stateMu.Unlock()
	return len(w.state)
}
