// Package watch reloads the content index when its file changes on disk.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"swmterm/internal/log"

	"github.com/fsnotify/fsnotify"
)

// FileModification represents a change to a watched file
type FileModification struct {
	Path      string
	Info      os.FileInfo
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors individual files for changes using fsnotify. Each file's
// parent directory is watched so that editors and build tools which replace
// the file atomically are still noticed.
type Watcher struct {
	// Files being watched, keyed by cleaned absolute path
	files map[string]struct{}

	// Directories registered with fsnotify
	directories map[string]struct{}

	// Channel to receive file modifications
	fileModChan chan FileModification

	// Channel to signal stop
	stopChan chan struct{}

	// Closed when the event loop exits
	doneChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Guards running, files and directories
	mutex sync.RWMutex

	// Whether the watcher is running
	running bool
}

// New creates a new file watcher using fsnotify
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		files:       make(map[string]struct{}),
		directories: make(map[string]struct{}),
		fileModChan: make(chan FileModification, 10),
		stopChan:    make(chan struct{}),
		fsWatcher:   fsWatcher,
	}, nil
}

// AddFile starts watching path. The file must exist.
func (w *Watcher) AddFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("error accessing file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	dir := filepath.Dir(abs)

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if _, ok := w.directories[dir]; !ok {
		if err := w.fsWatcher.Add(dir); err != nil {
			return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
		}
		w.directories[dir] = struct{}{}
	}
	w.files[abs] = struct{}{}

	log.LogWithFields(log.F("file", abs)).Info("Watching file")
	return nil
}

// FileChannel returns the channel that delivers file modification events
func (w *Watcher) FileChannel() <-chan FileModification {
	return w.fileModChan
}

// Start begins the file watching process using fsnotify
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.doneChan = make(chan struct{})
	stop, done := w.stopChan, w.doneChan
	w.mutex.Unlock()

	go func() {
		defer close(done)
		w.loop(stop)
	}()

	log.Info("Watcher started.")
	return nil
}

func (w *Watcher) loop(stop <-chan struct{}) {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				log.Debug("fsWatcher.Events channel closed")
				return
			}
			w.handle(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				log.Debug("fsWatcher.Errors channel closed")
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-stop:
			log.Debug("Watcher event loop received stop signal.")
			return
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}

	name := filepath.Clean(event.Name)

	// The file may be gone again by the time we look
	info, err := os.Stat(name)
	if err != nil {
		if !os.IsNotExist(err) {
			log.LogWithFields(log.F("file", name), log.F("error", err)).Error("Error stating file")
		}
		return
	}

	mod := FileModification{
		Path:      name,
		Info:      info,
		Timestamp: time.Now(),
		Op:        event.Op,
	}

	w.mutex.RLock()
	defer w.mutex.RUnlock()
	if _, watched := w.files[name]; !watched || !w.running {
		return
	}
	select {
	case w.fileModChan <- mod:
	default:
		log.LogWithFields(log.F("file", name)).Warn("Event channel is full, dropped event")
	}
}

// Stop halts the file watching process and closes the event channel
func (w *Watcher) Stop() {
	w.mutex.Lock()
	if !w.running {
		w.mutex.Unlock()
		return
	}
	w.running = false
	close(w.stopChan)
	done := w.doneChan
	w.mutex.Unlock()

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}

	// The loop may be mid-send; wait for it before closing the channel
	<-done
	close(w.fileModChan)

	log.Info("Watcher stopped.")
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Files returns the watched file paths
func (w *Watcher) Files() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	files := make([]string, 0, len(w.files))
	for f := range w.files {
		files = append(files, f)
	}
	return files
}
