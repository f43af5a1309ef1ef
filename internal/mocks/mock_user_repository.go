package mocks

import (
	"context"

	"github.com/meron6/authsvc/domain"
)

// MockUserRepository implements domain.UserRepository for testing.
type MockUserRepository struct {
	InsertFunc  func(ctx context.Context, email, hashedPassword string) (*domain.User, error)
	FindOneFunc func(ctx context.Context, filter domain.UserFilter) (*domain.User, error)
	UpdateFunc  func(ctx context.Context, userID uint, update domain.UserUpdate) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Insert creates a new user.
func (m *MockUserRepository) Insert(ctx context.Context, email, hashedPassword string) (*domain.User, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, email, hashedPassword)
	}
	// Default behavior: echo the arguments back as a stored user
	return &domain.User{ID: 1, Email: email, HashedPassword: hashedPassword}, nil
}

// FindOne finds a user matching the filter.
func (m *MockUserRepository) FindOne(ctx context.Context, filter domain.UserFilter) (*domain.User, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(ctx, filter)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Update updates an existing user.
func (m *MockUserRepository) Update(ctx context.Context, userID uint, update domain.UserUpdate) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, update)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
