package domain

import (
	"context"
	"time"
)

// AuditEventType defines the type of audit event.
type AuditEventType string

const (
	// Account events
	UserRegistrationEvent AuditEventType = "USER_REGISTERED"
	UserLoginEvent        AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent AuditEventType = "USER_LOGIN_FAILED"

	// Session lifecycle events
	SessionCreatedEvent   AuditEventType = "SESSION_CREATED"
	SessionDestroyedEvent AuditEventType = "SESSION_DESTROYED"

	// Password reset events
	ResetRequestedEvent AuditEventType = "RESET_REQUESTED"
	ResetCompletedEvent AuditEventType = "RESET_COMPLETED"
	ResetRejectedEvent  AuditEventType = "RESET_REJECTED"
)

// AuditEvent represents a business event that occurred in the system.
// Secrets never appear here; emails and session ids are left to the log
// sink's redaction policy.
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	UserID    uint           `json:"user_id"`
	Email     string         `json:"email,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
	Success   bool           `json:"success"`
}

// AuditLogger defines operations for recording audit events.
type AuditLogger interface {
	LogEvent(ctx context.Context, event *AuditEvent) error
}

// NewAuditEvent creates a new audit event with common fields populated.
func NewAuditEvent(eventType AuditEventType, userID uint) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithError sets error information on the audit event.
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithEmail sets the email field.
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}

// WithSessionID sets the session id field.
func (e *AuditEvent) WithSessionID(sessionID string) *AuditEvent {
	e.SessionID = sessionID
	return e
}
