// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/models"
)

func TestComposeResetMessage(t *testing.T) {
	msg, err := ComposeResetMessage("https://estagio.pge.pa.gov.br/", "maria@example.com", "ab cd", "Maria <b>", 24)
	require.NoError(t, err)

	assert.Equal(t, "maria@example.com", msg.To)
	assert.Equal(t, ResetSubject, msg.Subject)
	assert.Equal(t, "https://estagio.pge.pa.gov.br/reset-password?token=ab+cd", msg.ResetURL)
	assert.Contains(t, msg.Text, msg.ResetURL)
	assert.Contains(t, msg.Text, "24 horas")
	assert.Contains(t, msg.HTML, "Maria &lt;b&gt;")
	assert.NotContains(t, msg.HTML, "Maria <b>")
}

func TestNewMailer_Unconfigured(t *testing.T) {
	m, err := NewMailer(config.Mail{}, config.App{}, nil, logger.Nop())
	require.NoError(t, err)

	err = m.SendPasswordResetEmail(context.Background(), "a@b.com", "t", "A")
	require.ErrorIs(t, err, ErrMailerNotConfigured)
}

func TestNewMailer_NATSWithoutBus(t *testing.T) {
	_, err := NewMailer(config.Mail{Kind: config.MailKindNATS}, config.App{}, nil, logger.Nop())
	require.ErrorIs(t, err, ErrNilBus)
}

func TestNewMailer_UnknownKind(t *testing.T) {
	_, err := NewMailer(config.Mail{Kind: "smtp"}, config.App{}, nil, logger.Nop())
	require.ErrorIs(t, err, config.ErrInvalidMailConfigs)
}

func TestHTTPMailer_Send(t *testing.T) {
	var got models.MailMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/send-email", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	m, err := NewMailer(
		config.Mail{Kind: config.MailKindHTTP, APIAddress: srv.URL, Timeout: time.Second},
		config.App{ResetBaseURL: "https://portal", ResetTokenTTL: 24 * time.Hour},
		nil, logger.Nop(),
	)
	require.NoError(t, err)

	require.NoError(t, m.SendPasswordResetEmail(context.Background(), "maria@example.com", "tok", "Maria"))
	assert.Equal(t, "maria@example.com", got.To)
	assert.Equal(t, "https://portal/reset-password?token=tok", got.ResetURL)
	assert.Equal(t, "Maria", got.DisplayName)
}

func TestHTTPMailer_Refused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("smtp relay down"))
	}))
	defer srv.Close()

	sender, err := NewHTTPSender(config.Mail{APIAddress: srv.URL}, logger.Nop())
	require.NoError(t, err)

	err = sender.Send(context.Background(), models.MailMessage{To: "a@b.com"})
	require.ErrorIs(t, err, ErrMailDeliveryFailed)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "smtp relay down")
}

func TestHTTPMailer_EmptyRecipient(t *testing.T) {
	m, err := newHTTPMailer(config.Mail{APIAddress: "localhost:1"}, newResetComposer("https://portal", 0), logger.Nop())
	require.NoError(t, err)

	err = m.SendPasswordResetEmail(context.Background(), "  ", "tok", "Maria")
	require.ErrorIs(t, err, ErrEmptyRecipient)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8081", want: "http://localhost:8081"},
		{in: "https://mail.example.com/", want: "https://mail.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type recordingPublisher struct {
	subject string
	value   any
	err     error
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, v any) error {
	p.subject = subject
	p.value = v
	return p.err
}

func TestNATSMailer(t *testing.T) {
	pub := &recordingPublisher{}
	m, err := NewMailer(config.Mail{Kind: config.MailKindNATS, Subject: "portal.mail"}, config.App{ResetBaseURL: "https://portal"}, pub, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, m.SendPasswordResetEmail(context.Background(), "maria@example.com", "tok", "Maria"))
	assert.Equal(t, "portal.mail", pub.subject)
	msg, ok := pub.value.(models.MailMessage)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(msg.ResetURL, "token=tok"))

	pub.err = errors.New("no responders")
	err = m.SendPasswordResetEmail(context.Background(), "maria@example.com", "tok", "Maria")
	require.ErrorIs(t, err, ErrMailDeliveryFailed)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "m***@example.com", maskEmail("maria@example.com"))
	assert.Equal(t, "***", maskEmail("not-an-email"))
}

func TestBus_NilReceiver(t *testing.T) {
	var b *Bus
	require.ErrorIs(t, b.Publish(context.Background(), "s", 1), ErrNilBus)
	_, err := b.Subscribe(context.Background(), "s", "d", func(context.Context, []byte) error { return nil })
	require.ErrorIs(t, err, ErrNilBus)
	require.ErrorIs(t, b.EnsureStream("PORTAL_MAIL", "s", time.Hour), ErrNilBus)
	b.Close()
}

func TestStreamConfig_ExpiresWithResetTokens(t *testing.T) {
	cfg := streamConfig("PORTAL_MAIL", "portal.mail.password-reset", 24*time.Hour)

	assert.Equal(t, "PORTAL_MAIL", cfg.Name)
	assert.Equal(t, []string{"portal.mail.password-reset"}, cfg.Subjects)
	assert.Equal(t, nats.WorkQueuePolicy, cfg.Retention)
	assert.Equal(t, 24*time.Hour, cfg.MaxAge)
}
