package logging

import (
	"context"
	"log/slog"

	"github.com/meron6/authsvc/domain"
)

// SlogAuditLogger implements domain.AuditLogger by writing events to a
// structured logger. Attribute keys match the process redaction policy,
// so session_id and email are masked when configured.
type SlogAuditLogger struct {
	logger *slog.Logger
}

// NewSlogAuditLogger creates an audit logger on top of l.
func NewSlogAuditLogger(l *slog.Logger) *SlogAuditLogger {
	return &SlogAuditLogger{logger: l}
}

// LogEvent implements domain.AuditLogger.
func (a *SlogAuditLogger) LogEvent(ctx context.Context, event *domain.AuditEvent) error {
	attrs := []any{
		"event_type", string(event.EventType),
		"user_id", event.UserID,
		"success", event.Success,
	}
	if event.Email != "" {
		attrs = append(attrs, "email", event.Email)
	}
	if event.SessionID != "" {
		attrs = append(attrs, "session_id", event.SessionID)
	}
	if event.ErrorMsg != "" {
		attrs = append(attrs, "error_msg", event.ErrorMsg)
	}

	if event.Success {
		a.logger.InfoContext(ctx, "audit", attrs...)
	} else {
		a.logger.WarnContext(ctx, "audit", attrs...)
	}
	return nil
}

var _ domain.AuditLogger = (*SlogAuditLogger)(nil)
