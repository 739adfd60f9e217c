// Package memory provides the in-process session store. All pipeline
// state is per-session and in-memory; nothing survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
)

// SessionRepo is an in-memory implementation of port.SessionRepository.
// The lock guarantees structural integrity only; concurrent pipeline runs
// against the same session are not ordered or deduplicated, and the last
// write wins.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session
}

// NewSessionRepo creates an empty in-memory session store.
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[uuid.UUID]*domain.Session)}
}

// Create stores a new session.
func (r *SessionRepo) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *session
	r.sessions[session.ID] = &stored
	return nil
}

// GetByID returns a copy of the session, or domain.ErrNotFound. The copy
// keeps callers from mutating stored state without going through Update.
func (r *SessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	session := *stored
	return &session, nil
}

// Update replaces the stored session state and refreshes its activity time.
func (r *SessionRepo) Update(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[session.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *session
	stored.LastActiveAt = time.Now()
	r.sessions[session.ID] = &stored
	return nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (r *SessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// DeleteIdleSince removes sessions whose last activity predates cutoff and
// returns how many were removed.
func (r *SessionRepo) DeleteIdleSince(ctx context.Context, cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.LastActiveAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
