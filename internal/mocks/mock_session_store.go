package mocks

import (
	"context"

	"github.com/meron6/authsvc/domain"
)

// MockSessionStore implements domain.SessionStore for testing.
type MockSessionStore struct {
	CreateFunc  func(ctx context.Context, userID uint) (string, error)
	ResolveFunc func(ctx context.Context, sessionID string) (uint, error)
	DestroyFunc func(ctx context.Context, sessionID string) (bool, error)
}

// NewMockSessionStore creates a new MockSessionStore with default behaviors.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{}
}

// Create generates a session for the user.
func (m *MockSessionStore) Create(ctx context.Context, userID uint) (string, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID)
	}
	// Default behavior: fixed id
	return "mock-session-id", nil
}

// Resolve returns the owning user id.
func (m *MockSessionStore) Resolve(ctx context.Context, sessionID string) (uint, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, sessionID)
	}
	// Default behavior: not found
	return 0, domain.ErrSessionNotFound
}

// Destroy removes the session.
func (m *MockSessionStore) Destroy(ctx context.Context, sessionID string) (bool, error) {
	if m.DestroyFunc != nil {
		return m.DestroyFunc(ctx, sessionID)
	}
	// Default behavior: nothing removed
	return false, nil
}

// Compile-time interface compliance verification
var _ domain.SessionStore = (*MockSessionStore)(nil)
