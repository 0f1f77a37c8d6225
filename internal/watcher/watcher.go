// Package watcher tracks recently modified files in the workspace and
// doubles as the user-activity signal for the inactivity watchdog.
package watcher

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/focusdeck-io/focusdeck/internal/log"
)

// maxTrackedFiles caps the recently-modified list.
const maxTrackedFiles = 200

// activityThrottle limits how often the activity callback fires; a save
// burst counts as one activity signal.
const activityThrottle = time.Second

// Watcher watches a workspace root for file changes.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	root       string
	onActivity func()
	done       chan struct{}
	log        *logrus.Entry

	mu         sync.Mutex
	files      []string // relative paths, most recent last, unique
	lastSignal time.Time
}

// New creates a watcher over root. onActivity may be nil.
func New(root string, onActivity func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher:  fsWatcher,
		root:       root,
		onActivity: onActivity,
		done:       make(chan struct{}),
		log:        log.New("watcher"),
	}, nil
}

// Start registers the root and its subdirectories and begins processing
// events.
func (w *Watcher) Start() error {
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if isHidden(d.Name()) && path != w.root {
			return filepath.SkipDir
		}
		if addErr := w.fsWatcher.Add(path); addErr != nil {
			w.log.WithError(addErr).WithField("dir", path).Warn("failed to watch directory")
		}
		return nil
	})
	if err != nil {
		return err
	}

	go w.processEvents()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

// Files returns the recently modified files, oldest first.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.files...)
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("watch error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	if isHidden(filepath.Base(event.Name)) {
		return
	}

	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		if event.Op&fsnotify.Create != 0 {
			_ = w.fsWatcher.Add(event.Name)
		}
		return
	}

	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		rel = event.Name
	}

	w.mu.Lock()
	w.record(rel)
	signal := time.Since(w.lastSignal) >= activityThrottle
	if signal {
		w.lastSignal = time.Now()
	}
	w.mu.Unlock()

	if signal && w.onActivity != nil {
		w.onActivity()
	}
}

// record moves path to the end of the list, keeping entries unique and the
// list capped. Caller holds the lock.
func (w *Watcher) record(path string) {
	for i, f := range w.files {
		if f == path {
			w.files = append(w.files[:i], w.files[i+1:]...)
			break
		}
	}
	w.files = append(w.files, path)
	if len(w.files) > maxTrackedFiles {
		w.files = w.files[len(w.files)-maxTrackedFiles:]
	}
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != string(filepath.Separator)
}
