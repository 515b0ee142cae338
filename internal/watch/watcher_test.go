package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsTrackedFileWrites(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "openmw.cfg")
	require.NoError(t, os.WriteFile(cfgPath, []byte("data=mods\n"), 0o644))

	changed := make(chan string, 1)
	w, err := NewWatcher([]string{cfgPath}, func(path string) {
		select {
		case changed <- path:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Stop()

	w.Start()
	// Give the watch goroutine a moment to begin polling.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(cfgPath, []byte("data=other\n"), 0o644))

	select {
	case path := <-changed:
		abs, err := filepath.Abs(cfgPath)
		require.NoError(t, err)
		assert.Equal(t, abs, path)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatcherIgnoresUntrackedFiles(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "openmw.cfg")
	require.NoError(t, os.WriteFile(cfgPath, []byte("data=mods\n"), 0o644))

	changed := make(chan string, 1)
	w, err := NewWatcher([]string{cfgPath}, func(path string) {
		select {
		case changed <- path:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Stop()

	w.Start()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(tmp, "other.txt"), []byte("x"), 0o644))

	select {
	case path := <-changed:
		t.Fatalf("unexpected notification for %s", path)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "openmw.cfg")
	require.NoError(t, os.WriteFile(cfgPath, []byte("data=mods\n"), 0o644))

	w, err := NewWatcher([]string{cfgPath}, func(string) {})
	require.NoError(t, err)

	w.Start()
	require.NoError(t, w.Stop())
	assert.NotPanics(t, func() { _ = w.Stop() })
}
