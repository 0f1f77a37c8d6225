package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookkeepingWatcher(t *testing.T) *Watcher {
	t.Helper()
	w, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(w.Stop)
	return w
}

func TestRecordKeepsMostRecentLast(t *testing.T) {
	w := newBookkeepingWatcher(t)

	w.record("a.go")
	w.record("b.go")
	w.record("a.go")

	assert.Equal(t, []string{"b.go", "a.go"}, w.Files())
}

func TestRecordCapsList(t *testing.T) {
	w := newBookkeepingWatcher(t)

	for i := 0; i < maxTrackedFiles+25; i++ {
		w.record(fmt.Sprintf("file_%d.go", i))
	}

	files := w.Files()
	assert.Len(t, files, maxTrackedFiles)
	assert.Equal(t, "file_25.go", files[0], "oldest entries are evicted")
}

func TestFilesReturnsCopy(t *testing.T) {
	w := newBookkeepingWatcher(t)
	w.record("a.go")

	files := w.Files()
	files[0] = "mutated"
	assert.Equal(t, []string{"a.go"}, w.Files())
}

func TestHandleEventRecordsWrites(t *testing.T) {
	w := newBookkeepingWatcher(t)

	w.handleEvent(fsnotify.Event{Name: filepath.Join(w.root, "main.go"), Op: fsnotify.Write})
	w.handleEvent(fsnotify.Event{Name: filepath.Join(w.root, "sub", "util.go"), Op: fsnotify.Create})

	assert.Equal(t, []string{"main.go", filepath.Join("sub", "util.go")}, w.Files())
}

func TestHandleEventIgnoresUninterestingOps(t *testing.T) {
	w := newBookkeepingWatcher(t)

	w.handleEvent(fsnotify.Event{Name: filepath.Join(w.root, "main.go"), Op: fsnotify.Chmod})
	w.handleEvent(fsnotify.Event{Name: filepath.Join(w.root, "main.go"), Op: fsnotify.Remove})

	assert.Empty(t, w.Files())
}

func TestHandleEventIgnoresHiddenFiles(t *testing.T) {
	w := newBookkeepingWatcher(t)

	w.handleEvent(fsnotify.Event{Name: filepath.Join(w.root, ".env"), Op: fsnotify.Write})

	assert.Empty(t, w.Files())
}

func TestHandleEventDirectoryCreateIsNotRecorded(t *testing.T) {
	w := newBookkeepingWatcher(t)

	dir := filepath.Join(w.root, "pkg")
	require.NoError(t, os.Mkdir(dir, 0o755))

	w.handleEvent(fsnotify.Event{Name: dir, Op: fsnotify.Create})

	assert.Empty(t, w.Files(), "new directories are watched, not tracked as files")
}

func TestHandleEventThrottlesActivitySignal(t *testing.T) {
	signals := 0
	w, err := New(t.TempDir(), func() { signals++ })
	require.NoError(t, err)
	t.Cleanup(w.Stop)

	event := fsnotify.Event{Name: filepath.Join(w.root, "main.go"), Op: fsnotify.Write}

	// A save burst inside the throttle window counts as one signal.
	w.handleEvent(event)
	w.handleEvent(event)
	w.handleEvent(event)
	assert.Equal(t, 1, signals)

	// Once the window has passed, the next event signals again.
	w.mu.Lock()
	w.lastSignal = time.Now().Add(-2 * activityThrottle)
	w.mu.Unlock()

	w.handleEvent(event)
	assert.Equal(t, 2, signals)
}

func TestIsHidden(t *testing.T) {
	assert.True(t, isHidden(".git"))
	assert.False(t, isHidden("main.go"))
	assert.False(t, isHidden("."))
}
