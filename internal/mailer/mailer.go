// Package mailer sends rendered receipts as email attachments through
// a configured SMTP relay. One connection, one delivery attempt per
// call; there is no queue and no retry.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"podkeeper/internal/config"
	"podkeeper/internal/model"
)

type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers one message with the attachment to a single recipient.
// When the relay is not configured it fails immediately without any
// network I/O. Every failure comes back wrapped in ErrDeliveryFailure.
func (m *Mailer) Send(ctx context.Context, to string, subject string, body string, attachment []byte, filename string) error {
	if !m.cfg.Configured() {
		slog.Warn("smtp relay not configured; dropping email", "to", to)
		return fmt.Errorf("%w: smtp relay not configured", model.ErrDeliveryFailure)
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.SenderEmail); err != nil {
		return fmt.Errorf("%w: invalid sender: %v", model.ErrDeliveryFailure, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%w: invalid recipient: %v", model.ErrDeliveryFailure, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)
	if len(attachment) > 0 {
		if err := msg.AttachReader(filename, bytes.NewReader(attachment)); err != nil {
			return fmt.Errorf("%w: attach %s: %v", model.ErrDeliveryFailure, filename, err)
		}
	}

	client, err := gomail.NewClient(m.cfg.Server,
		gomail.WithPort(m.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.SenderEmail),
		gomail.WithPassword(m.cfg.SenderPassword),
	)
	if err != nil {
		return fmt.Errorf("%w: smtp client: %v", model.ErrDeliveryFailure, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		slog.Error("email delivery failed", "to", to, "error", err.Error())
		return fmt.Errorf("%w: %v", model.ErrDeliveryFailure, err)
	}

	slog.Info("email delivered", "to", to, "attachment", filename)
	return nil
}
