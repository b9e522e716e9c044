package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"limoride/internal/inventory"
	"limoride/internal/reservation"
)

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// Session is one wizard run: the state machine plus the catalog snapshot
// taken when the session started. The snapshot is read-only for the
// session's lifetime.
type Session struct {
	ID        string              `json:"id"`
	Wizard    *reservation.Wizard `json:"wizard"`
	Catalog   []inventory.Offer   `json:"catalog"`
	CreatedAt time.Time           `json:"createdAt"`
	ExpiresAt time.Time           `json:"expiresAt"`
}

// SessionStore persists wizard sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	// DeleteExpired removes sessions past their expiry and reports how many
	// were purged. Stores with native expiry may report zero.
	DeleteExpired(ctx context.Context) (int, error)
}

// MemorySessionStore keeps sessions in process memory. The default store
// when no Redis address is configured.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: map[string]*Session{}}
}

func (s *MemorySessionStore) Save(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemorySessionStore) DeleteExpired(_ context.Context) (int, error) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	purged := 0
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
			purged++
		}
	}
	return purged, nil
}
