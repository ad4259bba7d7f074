// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/models"
)

// NewMailer picks the backend named by cfg.Kind. bus is only needed for the
// "nats" kind and may be nil otherwise.
func NewMailer(cfg config.Mail, app config.App, bus Publisher, log *logger.Logger) (Mailer, error) {
	composer := newResetComposer(app.ResetBaseURL, app.ResetTokenTTL)

	switch cfg.Kind {
	case "":
		log.Warn().Msg("no mail backend configured, password reset emails will fail")
		return unconfiguredMailer{}, nil
	case config.MailKindHTTP:
		m, err := newHTTPMailer(cfg, composer, log)
		if err != nil {
			return nil, err
		}
		return m, nil
	case config.MailKindNATS:
		if bus == nil {
			return nil, fmt.Errorf("%w: nats mail backend needs a bus", ErrNilBus)
		}
		return newNATSMailer(bus, cfg.Subject, composer), nil
	default:
		return nil, fmt.Errorf("%w: unknown mail kind %q", config.ErrInvalidMailConfigs, cfg.Kind)
	}
}

// resetComposer turns a token into a rendered message.
type resetComposer struct {
	baseURL    string
	validHours int
}

func newResetComposer(baseURL string, ttl time.Duration) resetComposer {
	hours := int(ttl / time.Hour)
	if hours <= 0 {
		hours = 24
	}
	return resetComposer{baseURL: baseURL, validHours: hours}
}

func (c resetComposer) compose(email, token, displayName string) (models.MailMessage, error) {
	if strings.TrimSpace(email) == "" {
		return models.MailMessage{}, ErrEmptyRecipient
	}
	msg, err := ComposeResetMessage(c.baseURL, email, token, displayName, c.validHours)
	if err != nil {
		return models.MailMessage{}, fmt.Errorf("compose reset email: %w", err)
	}
	return msg, nil
}

type unconfiguredMailer struct{}

func (unconfiguredMailer) SendPasswordResetEmail(context.Context, string, string, string) error {
	return ErrMailerNotConfigured
}
