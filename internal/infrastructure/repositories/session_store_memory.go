package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meron6/authsvc/domain"
)

// MemorySessionStore implements domain.SessionStore with a process-local
// map. Sessions are lost on restart; suitable for single-process
// deployments only.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	duration time.Duration
	now      func() time.Time
}

type memorySession struct {
	userID    uint
	createdAt time.Time
}

// NewMemorySessionStore creates an in-memory session store. A duration of
// zero or less means sessions never expire.
func NewMemorySessionStore(duration time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]memorySession),
		duration: duration,
		now:      time.Now,
	}
}

// Create implements domain.SessionStore.
func (s *MemorySessionStore) Create(_ context.Context, userID uint) (string, error) {
	sessionID := uuid.NewString()
	s.mu.Lock()
	s.sessions[sessionID] = memorySession{userID: userID, createdAt: s.now()}
	s.mu.Unlock()
	return sessionID, nil
}

// Resolve implements domain.SessionStore. Expired entries resolve as not
// found; they are left in place until destroyed or overwritten.
func (s *MemorySessionStore) Resolve(_ context.Context, sessionID string) (uint, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	if s.duration > 0 && s.now().After(sess.createdAt.Add(s.duration)) {
		return 0, domain.ErrSessionNotFound
	}
	return sess.userID, nil
}

// Destroy implements domain.SessionStore.
func (s *MemorySessionStore) Destroy(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return false, nil
	}
	delete(s.sessions, sessionID)
	return true, nil
}

var _ domain.SessionStore = (*MemorySessionStore)(nil)
