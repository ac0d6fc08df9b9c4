package notify

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/umurava/maternalcare-booking/internal/config"
)

type emailSender interface {
	Send(toEmail, toName, subject, body string) error
}

// sendGridSender delivers plain-text email through the SendGrid API.
type sendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func newSendGridSender(cfg config.NotificationsConfig) *sendGridSender {
	return &sendGridSender{
		client:    sendgrid.NewSendClient(cfg.SendGridKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *sendGridSender) Send(toEmail, toName, subject, body string) error {
	from := sgmail.NewEmail(s.fromName, s.fromEmail)
	to := sgmail.NewEmail(toName, toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, body, "")

	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
