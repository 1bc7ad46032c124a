package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podkeeper/internal/config"
	"podkeeper/internal/model"
)

func TestMailer_SendUnconfigured(t *testing.T) {
	t.Run("fails fast without network when relay is unconfigured", func(t *testing.T) {
		m := New(config.SMTPConfig{Port: 587})

		started := time.Now()
		err := m.Send(context.Background(), "kunde@example.com", "POD - 2026-0042", "body", []byte("%PDF"), "POD_2026-0042.pdf")
		elapsed := time.Since(started)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrDeliveryFailure)
		assert.Less(t, elapsed, time.Second, "unconfigured send must not attempt a connection")
	})

	t.Run("partial configuration still counts as unconfigured", func(t *testing.T) {
		m := New(config.SMTPConfig{Server: "smtp.example.com", Port: 587})

		err := m.Send(context.Background(), "kunde@example.com", "subject", "body", nil, "receipt.pdf")
		assert.ErrorIs(t, err, model.ErrDeliveryFailure)
	})

	t.Run("invalid recipient is a delivery failure", func(t *testing.T) {
		m := New(config.SMTPConfig{
			Server:         "smtp.example.com",
			Port:           587,
			SenderEmail:    "pod@example.com",
			SenderPassword: "secret",
		})

		err := m.Send(context.Background(), "not-an-address", "subject", "body", nil, "receipt.pdf")
		assert.ErrorIs(t, err, model.ErrDeliveryFailure)
	})
}

func TestSMTPConfig_Configured(t *testing.T) {
	assert.False(t, config.SMTPConfig{}.Configured())
	assert.False(t, config.SMTPConfig{Server: "smtp.example.com"}.Configured())
	assert.True(t, config.SMTPConfig{
		Server:         "smtp.example.com",
		Port:           587,
		SenderEmail:    "pod@example.com",
		SenderPassword: "secret",
	}.Configured())
}
