package mocks

import "github.com/meron6/authsvc/domain"

// MockNotificationService implements domain.NotificationService for testing.
type MockNotificationService struct {
	SendEmailFunc func(to, subject, body string) error

	// Sent records every delivered message when no SendEmailFunc is set.
	Sent []SentEmail
}

// SentEmail is one recorded SendEmail call.
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors.
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendEmail sends an email.
func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	// Default behavior: record and succeed
	m.Sent = append(m.Sent, SentEmail{To: to, Subject: subject, Body: body})
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
