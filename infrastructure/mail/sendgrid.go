// Package mail adapts the SendGrid API to the EmailSender contract.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"fraibot/contract"
	"fraibot/errors"
)

var _ contract.EmailSender = (*SendGridSender)(nil)

type SendGridSender struct {
	client *sendgrid.Client
	log    *slog.Logger
}

func NewSendGridSender(apiKey string, log *slog.Logger) *SendGridSender {
	return &SendGridSender{client: sendgrid.NewSendClient(apiKey), log: log}
}

// Send delivers one plain-text mail. Invalid addresses, provider rejections
// and network failures all come back as ErrDelivery; the caller isolates
// them per recipient.
func (s *SendGridSender) Send(ctx context.Context, sender, recipient, subject, body string) error {
	message := sgmail.NewSingleEmail(
		sgmail.NewEmail("", sender),
		subject,
		sgmail.NewEmail("", recipient),
		body,
		"",
	)
	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrDelivery, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: provider returned status %d", errors.ErrDelivery, resp.StatusCode)
	}
	s.log.Debug("Mail accepted by provider", "recipient", recipient, "status", resp.StatusCode)
	return nil
}
