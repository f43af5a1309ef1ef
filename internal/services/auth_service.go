package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/meron6/authsvc/domain"
)

// AuthServiceImpl implements domain.AuthService. It owns the rule that a
// user's session_id back-reference and the session store stay consistent.
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	sessions    domain.SessionStore
	passwordSvc domain.PasswordService
	notifier    domain.NotificationService
	audit       domain.AuditLogger
	logger      *slog.Logger
}

// NewAuthService creates a new auth service. notifier and audit may be
// nil: reset tokens are then returned without being mailed, and no audit
// trail is written.
func NewAuthService(
	userRepo domain.UserRepository,
	sessions domain.SessionStore,
	passwordSvc domain.PasswordService,
	notifier domain.NotificationService,
	audit domain.AuditLogger,
	logger *slog.Logger,
) domain.AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessions:    sessions,
		passwordSvc: passwordSvc,
		notifier:    notifier,
		audit:       audit,
		logger:      logger,
	}
}

func (s *AuthServiceImpl) emit(ctx context.Context, event *domain.AuditEvent) {
	if s.audit == nil {
		return
	}
	if err := s.audit.LogEvent(ctx, event); err != nil {
		s.logger.Warn("audit event dropped", "event_type", string(event.EventType), "error", err)
	}
}

// Register implements domain.AuthService. The existence check gives a
// friendly fast path; the repository's unique index closes the race
// between concurrent registrations of the same email.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password string) (*domain.User, error) {
	_, err := s.userRepo.FindOne(ctx, domain.UserFilter{Email: domain.String(email)})
	if err == nil {
		return nil, domain.ErrAlreadyRegistered
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Insert(ctx, email, hashedPassword)
	if err != nil {
		return nil, err
	}

	s.emit(ctx, domain.NewAuditEvent(domain.UserRegistrationEvent, user.ID).WithEmail(user.Email))
	return user, nil
}

// Login implements domain.AuthService. An unknown email and a wrong
// password are the same expected outcome: false with no error. Storage
// failures are not authentication failures and propagate unchanged.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (bool, error) {
	user, err := s.userRepo.FindOne(ctx, domain.UserFilter{Email: domain.String(email)})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	if !s.passwordSvc.Verify(user.HashedPassword, password) {
		failure := domain.NewAuditEvent(domain.UserLoginFailureEvent, user.ID)
		failure.Success = false
		s.emit(ctx, failure)
		return false, nil
	}
	s.emit(ctx, domain.NewAuditEvent(domain.UserLoginEvent, user.ID).WithEmail(user.Email))
	return true, nil
}

// CreateSession implements domain.AuthService. On success the user's
// session_id field is overwritten, so re-login replaces rather than
// accumulates sessions.
func (s *AuthServiceImpl) CreateSession(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindOne(ctx, domain.UserFilter{Email: domain.String(email)})
	if err != nil {
		return "", err
	}

	sessionID, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.userRepo.Update(ctx, user.ID, domain.UserUpdate{SessionID: domain.String(sessionID)}); err != nil {
		return "", fmt.Errorf("failed to record session on user: %w", err)
	}

	s.emit(ctx, domain.NewAuditEvent(domain.SessionCreatedEvent, user.ID).WithSessionID(sessionID))
	return sessionID, nil
}

// ResolveSession implements domain.AuthService. Absence propagates at
// every stage: no record, an expired record, or a dangling user reference
// all yield domain.ErrSessionNotFound.
func (s *AuthServiceImpl) ResolveSession(ctx context.Context, sessionID string) (*domain.User, error) {
	userID, err := s.sessions.Resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindOne(ctx, domain.UserFilter{ID: &userID})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return user, nil
}

// Logout implements domain.AuthService. Destroys the store record and
// clears the user's session_id back-reference so the two stay consistent.
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) (bool, error) {
	user, err := s.userRepo.FindOne(ctx, domain.UserFilter{SessionID: domain.String(sessionID)})
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return false, err
	}

	destroyed, err := s.sessions.Destroy(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if !destroyed {
		return false, nil
	}

	if user != nil && user.SessionID != "" {
		if err := s.userRepo.Update(ctx, user.ID, domain.UserUpdate{SessionID: domain.Clear()}); err != nil {
			return false, fmt.Errorf("failed to clear session on user: %w", err)
		}
	}

	var userID uint
	if user != nil {
		userID = user.ID
	}
	s.emit(ctx, domain.NewAuditEvent(domain.SessionDestroyedEvent, userID).WithSessionID(sessionID))
	return true, nil
}

// RequestReset implements domain.AuthService. At most one token is live
// per user: a new request overwrites any outstanding one. The token is
// persisted before any mail goes out, so a send failure only costs the
// notification, never the token.
func (s *AuthServiceImpl) RequestReset(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindOne(ctx, domain.UserFilter{Email: domain.String(email)})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.emit(ctx, domain.NewAuditEvent(domain.ResetRejectedEvent, 0).WithEmail(email).WithError(domain.ErrInvalidResetRequest))
			return "", domain.ErrInvalidResetRequest
		}
		return "", err
	}

	token := uuid.NewString()
	if err := s.userRepo.Update(ctx, user.ID, domain.UserUpdate{ResetToken: domain.String(token)}); err != nil {
		return "", fmt.Errorf("failed to persist reset token: %w", err)
	}

	if s.notifier != nil {
		body := fmt.Sprintf("Use this token to reset your password: %s", token)
		if err := s.notifier.SendEmail(user.Email, "Password reset", body); err != nil {
			s.logger.Warn("reset mail not sent", "user_id", user.ID, "error", err)
		}
	}

	s.emit(ctx, domain.NewAuditEvent(domain.ResetRequestedEvent, user.ID).WithEmail(user.Email))
	return token, nil
}

// CompleteReset implements domain.AuthService. The password replacement
// and the token clear go through a single repository update, so a
// consumed token can never be replayed against the new password.
func (s *AuthServiceImpl) CompleteReset(ctx context.Context, token, newPassword string) error {
	user, err := s.userRepo.FindOne(ctx, domain.UserFilter{ResetToken: domain.String(token)})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidToken
		}
		return err
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.userRepo.Update(ctx, user.ID, domain.UserUpdate{
		HashedPassword: domain.String(hashedPassword),
		ResetToken:     domain.Clear(),
	})
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.emit(ctx, domain.NewAuditEvent(domain.ResetCompletedEvent, user.ID))
	return nil
}
