package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherFsnotify(t *testing.T) {
	tempDir := t.TempDir()
	indexPath := filepath.Join(tempDir, "terminal-index.json")
	require.NoError(t, os.WriteFile(indexPath, []byte("{}"), 0644))

	w, err := New()
	require.NoError(t, err, "New watcher creation failed")

	require.NoError(t, w.AddFile(indexPath), "Failed to add file to watcher")
	require.NoError(t, w.Start(), "Failed to start watcher")
	defer w.Stop()

	evChan := w.FileChannel()
	require.NotNil(t, evChan)

	// Allow a brief moment for fsnotify to initialize watches
	time.Sleep(100 * time.Millisecond)

	// Changes to siblings are ignored
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "other.txt"), []byte("x"), 0644))

	require.NoError(t, os.WriteFile(indexPath, []byte(`{"fileSystem": {}}`), 0644))

	timeout := time.After(3 * time.Second)
	for {
		select {
		case event, ok := <-evChan:
			require.True(t, ok, "Event channel closed unexpectedly")
			abs, _ := filepath.Abs(indexPath)
			assert.Equal(t, abs, event.Path, "only the watched file is reported")
			if event.Op.Has(fsnotify.Write) {
				require.NotNil(t, event.Info)
				assert.Equal(t, "terminal-index.json", event.Info.Name())
				return
			}
		case <-timeout:
			t.Fatal("Timeout waiting for WRITE event")
		}
	}
}

func TestWatcherStopClosesChannel(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "index.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.AddFile(path))
	require.NoError(t, w.Start())
	assert.True(t, w.IsRunning())
	assert.Error(t, w.Start(), "second start fails")

	w.Stop()
	assert.False(t, w.IsRunning())
	w.Stop()

	select {
	case _, ok := <-w.FileChannel():
		for ok {
			_, ok = <-w.FileChannel()
		}
	case <-time.After(time.Second):
		t.Error("Timeout waiting for event channel to close after stop")
	}
}

func TestWatcherRejectsDirectoriesAndMissingFiles(t *testing.T) {
	w, err := New()
	require.NoError(t, err)

	assert.Error(t, w.AddFile(t.TempDir()))
	assert.Error(t, w.AddFile(filepath.Join(t.TempDir(), "missing.json")))
	assert.Empty(t, w.Files())
}

type countingTarget struct {
	calls atomic.Int32
}

func (c *countingTarget) Reload(context.Context) error {
	c.calls.Add(1)
	return nil
}

func TestReloaderCoalescesWrites(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "terminal-index.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	target := &countingTarget{}
	r, err := NewReloader(target)
	require.NoError(t, err)
	r.SetDebounce(150 * time.Millisecond)

	var (
		mu    sync.Mutex
		paths []string
	)
	reloaded := make(chan struct{}, 4)
	r.SetCallback(func(p string, err error) {
		assert.NoError(t, err)
		mu.Lock()
		paths = append(paths, p)
		mu.Unlock()
		reloaded <- struct{}{}
	})

	require.NoError(t, r.AddFile(path))
	require.NoError(t, r.Start(context.Background()))
	defer r.Stop()

	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{"fileSystem": {}}`), 0644))
	}

	select {
	case <-reloaded:
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for reload")
	}

	// Give a stray second reload a chance to show up
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), target.calls.Load())

	status := r.Status()
	assert.True(t, status.Running)
	assert.Equal(t, 1, status.Reloads)
	assert.NoError(t, status.LastError)
	assert.False(t, status.LastReload.IsZero())

	r.Stop()
	assert.False(t, r.Status().Running)
}

func TestReloaderNeedsFiles(t *testing.T) {
	r, err := NewReloader(&countingTarget{})
	require.NoError(t, err)
	assert.Error(t, r.Start(context.Background()))
}
