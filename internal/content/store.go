package content

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"swmterm/internal/log"
)

// Observer is told about every load attempt.
type Observer func(stats Stats, elapsed time.Duration, err error)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithQAFile loads canned answers from path on every load. Without it the
// built-in set is used.
func WithQAFile(path string) StoreOption {
	return func(s *Store) { s.qaPath = path }
}

// WithObserver registers fn to be called after each load attempt.
func WithObserver(fn Observer) StoreOption {
	return func(s *Store) { s.observers = append(s.observers, fn) }
}

// Store publishes the current snapshot. Readers call Snapshot once per
// command and keep using that value; loads build a complete replacement and
// swap it in.
type Store struct {
	current atomic.Pointer[Snapshot]

	source    Source
	qaPath    string
	observers []Observer

	once    sync.Once
	onceErr error
	loadMu  sync.Mutex
}

// NewStore creates a store serving the default snapshot until a load
// succeeds. A nil source means the default snapshot is all there is.
func NewStore(source Source, opts ...StoreOption) *Store {
	s := &Store{source: source}
	for _, opt := range opts {
		opt(s)
	}
	def := DefaultSnapshot()
	def.QA = DefaultQA()
	s.current.Store(def)
	return s
}

// Snapshot returns the current snapshot. It is never nil.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Source describes where the index comes from, empty without a source.
func (s *Store) Source() string {
	if s.source == nil {
		return ""
	}
	return s.source.String()
}

// Loaded reports whether an index has been loaded.
func (s *Store) Loaded() bool {
	return s.Snapshot().Loaded
}

// Swap replaces the current snapshot.
func (s *Store) Swap(snap *Snapshot) {
	if snap == nil {
		return
	}
	s.current.Store(snap)
}

// LoadOnce loads the index the first time it is called. Later calls return
// the first result without fetching again.
func (s *Store) LoadOnce(ctx context.Context) error {
	s.once.Do(func() {
		s.onceErr = s.Reload(ctx)
	})
	return s.onceErr
}

// Reload fetches and parses the index and swaps it in. On failure the
// current snapshot stays in place.
func (s *Store) Reload(ctx context.Context) error {
	if s.source == nil {
		return nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	start := time.Now()
	snap, err := s.load(ctx)
	elapsed := time.Since(start)

	if err != nil {
		log.LogWithFields(log.F("source", s.source.String()), log.F("error", err)).Warn("Content index load failed")
		s.notify(s.Snapshot().Stats(), elapsed, err)
		return err
	}

	s.Swap(snap)
	stats := snap.Stats()
	log.LogWithFields(
		log.F("source", s.source.String()),
		log.F("files", stats.Files),
		log.F("entries", stats.Entries),
		log.F("qa_pairs", stats.QAPairs),
		log.F("elapsed", elapsed),
	).Info("Content index loaded")
	s.notify(stats, elapsed, nil)
	return nil
}

func (s *Store) load(ctx context.Context) (*Snapshot, error) {
	data, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := ParseIndex(data)
	if err != nil {
		return nil, err
	}

	if s.qaPath != "" {
		qa, err := LoadQAFile(s.qaPath)
		if err != nil {
			return nil, err
		}
		snap.QA = qa
	} else {
		snap.QA = DefaultQA()
	}
	return snap, nil
}

func (s *Store) notify(stats Stats, elapsed time.Duration, err error) {
	for _, fn := range s.observers {
		fn(stats, elapsed, err)
	}
}
