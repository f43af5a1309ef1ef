package mocks

import (
	"context"

	"github.com/meron6/authsvc/domain"
)

// MockAuditLogger implements domain.AuditLogger for testing.
type MockAuditLogger struct {
	LogEventFunc func(ctx context.Context, event *domain.AuditEvent) error

	// Events records every event when no LogEventFunc is set.
	Events []*domain.AuditEvent
}

// NewMockAuditLogger creates a new MockAuditLogger with default behaviors.
func NewMockAuditLogger() *MockAuditLogger {
	return &MockAuditLogger{}
}

// LogEvent records an audit event.
func (m *MockAuditLogger) LogEvent(ctx context.Context, event *domain.AuditEvent) error {
	if m.LogEventFunc != nil {
		return m.LogEventFunc(ctx, event)
	}
	// Default behavior: record and succeed
	m.Events = append(m.Events, event)
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuditLogger = (*MockAuditLogger)(nil)
