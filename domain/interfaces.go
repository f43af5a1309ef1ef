package domain

import "context"

// UserRepository defines user data access operations.
type UserRepository interface {
	Insert(ctx context.Context, email, hashedPassword string) (*User, error)
	FindOne(ctx context.Context, filter UserFilter) (*User, error)
	Update(ctx context.Context, userID uint, update UserUpdate) error
}

// SessionStore defines the capability contract shared by every session
// store variant. Resolve returns ErrSessionNotFound for records that are
// absent or expired; Destroy reports whether anything was removed.
type SessionStore interface {
	Create(ctx context.Context, userID uint) (string, error)
	Resolve(ctx context.Context, sessionID string) (uint, error)
	Destroy(ctx context.Context, sessionID string) (bool, error)
}

// AuthService defines the authentication and session lifecycle operations
// exposed to callers.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (bool, error)
	CreateSession(ctx context.Context, email string) (string, error)
	ResolveSession(ctx context.Context, sessionID string) (*User, error)
	Logout(ctx context.Context, sessionID string) (bool, error)
	RequestReset(ctx context.Context, email string) (string, error)
	CompleteReset(ctx context.Context, token, newPassword string) error
}

// PasswordService defines password operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// NotificationService defines outbound notification operations.
type NotificationService interface {
	SendEmail(to, subject, body string) error
}
