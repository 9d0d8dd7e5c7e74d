package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"swmterm/internal/log"
)

// DefaultDebounce is how long the reloader waits for a burst of writes to
// settle before reloading.
const DefaultDebounce = 250 * time.Millisecond

// Reloadable is anything that can rebuild itself from its source.
type Reloadable interface {
	Reload(ctx context.Context) error
}

// ReloaderStatus represents the current status of the reloader
type ReloaderStatus struct {
	Running    bool      // Whether the reloader is currently active
	Files      []string  // Files being watched
	LastReload time.Time // Time of the last reload attempt
	Reloads    int       // Successful reloads
	LastError  error     // Error from the last reload attempt, if any
}

// Reloader watches the index file and reloads the target when it changes
type Reloader struct {
	target   Reloadable
	watcher  *Watcher
	debounce time.Duration

	// Statistics
	reloads    int
	lastReload time.Time
	lastErr    error

	// Callback for when a reload completes
	callback func(path string, err error)

	mutex   sync.RWMutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewReloader creates a reloader for target
func NewReloader(target Reloadable) (*Reloader, error) {
	watcher, err := New()
	if err != nil {
		return nil, err
	}
	return &Reloader{
		target:   target,
		watcher:  watcher,
		debounce: DefaultDebounce,
	}, nil
}

// SetDebounce changes the settle delay
func (r *Reloader) SetDebounce(d time.Duration) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.debounce = d
}

// SetCallback sets a function to be called after every reload
func (r *Reloader) SetCallback(cb func(path string, err error)) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.callback = cb
}

// AddFile adds a file whose changes trigger a reload
func (r *Reloader) AddFile(path string) error {
	return r.watcher.AddFile(path)
}

// Start begins watching. Reloads stop when ctx is cancelled or Stop is
// called.
func (r *Reloader) Start(ctx context.Context) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.running {
		return fmt.Errorf("reloader is already running")
	}
	if len(r.watcher.Files()) == 0 {
		return fmt.Errorf("no files to watch")
	}
	if err := r.watcher.Start(); err != nil {
		return fmt.Errorf("error starting watcher: %w", err)
	}

	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	r.running = true

	go r.processEvents(ctx, r.done)
	return nil
}

// Stop halts the reloader
func (r *Reloader) Stop() {
	r.mutex.Lock()
	if !r.running {
		r.mutex.Unlock()
		return
	}
	r.running = false
	r.cancel()
	done := r.done
	r.mutex.Unlock()

	r.watcher.Stop()
	<-done
}

// Status returns the current status of the reloader
func (r *Reloader) Status() ReloaderStatus {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return ReloaderStatus{
		Running:    r.running,
		Files:      r.watcher.Files(),
		LastReload: r.lastReload,
		Reloads:    r.reloads,
		LastError:  r.lastErr,
	}
}

// processEvents coalesces bursts of file events into single reloads
func (r *Reloader) processEvents(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	r.mutex.RLock()
	debounce := r.debounce
	r.mutex.RUnlock()

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)
	for {
		select {
		case mod, ok := <-r.watcher.FileChannel():
			if !ok {
				return
			}
			pending = mod.Path
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			r.reload(ctx, pending)

		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (r *Reloader) reload(ctx context.Context, path string) {
	err := r.target.Reload(ctx)

	r.mutex.Lock()
	r.lastReload = time.Now()
	r.lastErr = err
	if err == nil {
		r.reloads++
	}
	cb := r.callback
	r.mutex.Unlock()

	if err != nil {
		log.LogWithFields(log.F("file", path), log.F("error", err)).Warn("Reload failed, keeping previous content")
	} else {
		log.LogWithFields(log.F("file", path)).Info("Content reloaded")
	}

	if cb != nil {
		cb(path, err)
	}
}
