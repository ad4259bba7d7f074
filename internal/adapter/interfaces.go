// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects the portal to the outside systems that deliver
// password-reset email.
//
// [Mailer] is what the auth flow calls. Two backends exist: an HTTP mail API
// reached with resty and a NATS JetStream subject drained by the mail dispatcher worker. Without a
// configured backend every send fails with [ErrMailerNotConfigured].
package adapter

import (
	"context"

	"github.com/MKhiriev/intern-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Mailer sends the password-reset email for a freshly issued token.
type Mailer interface {
	// SendPasswordResetEmail composes and hands off the reset email.
	// Returns an error wrapping [ErrMailDeliveryFailed] or
	// [ErrMailerNotConfigured] on failure.
	SendPasswordResetEmail(ctx context.Context, email, token, displayName string) error
}

// MessageSender delivers an already composed message.
type MessageSender interface {
	Send(ctx context.Context, msg models.MailMessage) error
}

// Publisher publishes a JSON-encoded value on a subject.
type Publisher interface {
	Publish(ctx context.Context, subject string, v any) error
}
