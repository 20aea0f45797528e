package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"advanced-notepad/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T) (*FileWatcher, chan Event) {
	t.Helper()
	events := make(chan Event, 16)
	w, err := New(logger.NoOpLogger{}, func(e Event) { events <- e })
	require.NoError(t, err)
	t.Cleanup(w.Shutdown)
	return w, events
}

func waitEvent(t *testing.T, events chan Event) Event {
	t.Helper()
	select {
	case e := <-events:
		return e
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for file event")
		return Event{}
	}
}

func TestWatcherReportsModification(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	w, events := newTestWatcher(t)
	require.NoError(t, w.Watch(path))

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))

	e := waitEvent(t, events)
	assert.Equal(t, Modified, e.Kind)
	assert.Equal(t, w.Path(), e.Path)
}

func TestWatcherReportsRemoval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	w, events := newTestWatcher(t)
	require.NoError(t, w.Watch(path))

	require.NoError(t, os.Remove(path))

	assert.Equal(t, Removed, waitEvent(t, events).Kind)
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	w, events := newTestWatcher(t)
	require.NoError(t, w.Watch(path))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case e := <-events:
		t.Fatalf("unexpected event %+v", e)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchEmptyPathStops(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	w, events := newTestWatcher(t)
	require.NoError(t, w.Watch(path))
	require.NoError(t, w.Watch(""))
	assert.Empty(t, w.Path())

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))

	select {
	case e := <-events:
		t.Fatalf("unexpected event %+v", e)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	w, _ := newTestWatcher(t)

	err := w.Watch(filepath.Join(t.TempDir(), "gone", "notes.txt"))

	assert.Error(t, err)
	assert.Empty(t, w.Path())
}

func TestShutdownTwice(t *testing.T) {
	w, _ := newTestWatcher(t)
	w.Shutdown()
	w.Shutdown()
}
