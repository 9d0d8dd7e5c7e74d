package server

import (
	"time"

	"swmterm/internal/errors"
	"swmterm/internal/metrics"
	"swmterm/internal/session"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live terminal sessions in memory. A session
// expires after ttl without a request.
type SessionRepository struct {
	cache  *cache.Cache
	exec   session.Executor
	prompt session.PromptConfig
}

// NewSessionRepository creates a repository whose sessions run commands
// on exec.
func NewSessionRepository(exec session.Executor, prompt session.PromptConfig, ttl time.Duration) *SessionRepository {
	// Purge expired sessions at a tenth of their lifetime, but not more
	// often than every second
	cleanup := ttl / 10
	if cleanup < time.Second {
		cleanup = time.Second
	}
	r := &SessionRepository{
		cache:  cache.New(ttl, cleanup),
		exec:   exec,
		prompt: prompt,
	}
	r.cache.OnEvicted(func(string, interface{}) {
		metrics.SetSessionsActive(r.cache.ItemCount())
	})
	return r
}

// Create starts a new session with a random ID.
func (r *SessionRepository) Create() *session.Session {
	s := session.New(r.exec,
		session.WithID(uuid.New().String()),
		session.WithPrompt(r.prompt),
	)
	r.cache.Set(s.ID(), s, cache.DefaultExpiration)
	metrics.SetSessionsActive(r.cache.ItemCount())
	return s
}

// Get returns the session and extends its lifetime.
func (r *SessionRepository) Get(id string) (*session.Session, error) {
	x, found := r.cache.Get(id)
	if !found {
		return nil, errors.Wrapf(errors.ErrSessionNotFound, "session %q", id)
	}
	s := x.(*session.Session)
	// Re-store under the session's own ID; id may alias a request buffer
	r.cache.Set(s.ID(), s, cache.DefaultExpiration)
	return s, nil
}

// Delete ends a session.
func (r *SessionRepository) Delete(id string) {
	r.cache.Delete(id)
	metrics.SetSessionsActive(r.cache.ItemCount())
}

// Count returns the number of live sessions.
func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
