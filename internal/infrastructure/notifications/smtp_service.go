package notifications

import (
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/meron6/authsvc/domain"
)

// SMTPService implements domain.NotificationService over plain SMTP.
type SMTPService struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPService creates an SMTP notification service. auth may be nil
// for unauthenticated relays.
func NewSMTPService(addr, from string, auth smtp.Auth) domain.NotificationService {
	return &SMTPService{addr: addr, from: from, auth: auth}
}

// SendEmail implements domain.NotificationService.
func (s *SMTPService) SendEmail(to, subject, body string) error {
	e := email.NewEmail()
	e.From = s.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)
	return e.Send(s.addr, s.auth)
}
