// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/models"
)

// MailDispatcher consumes queued reset emails and hands each to a
// MessageSender. A failed delivery is left for redelivery; a message that
// cannot be decoded is dropped.
type MailDispatcher struct {
	subscriber Subscriber
	sender     MessageSender
	subject    string
	durable    string
}

func NewMailDispatcher(subscriber Subscriber, sender MessageSender, subject, durable string) *MailDispatcher {
	return &MailDispatcher{
		subscriber: subscriber,
		sender:     sender,
		subject:    subject,
		durable:    durable,
	}
}

// Run subscribes and blocks until ctx ends.
func (d *MailDispatcher) Run(ctx context.Context) error {
	sub, err := d.subscriber.Subscribe(ctx, d.subject, d.durable, d.handle)
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", d.subject, err)
	}

	logger.FromContext(ctx).Info().Str("subject", d.subject).Str("durable", d.durable).Msg("mail dispatcher started")
	<-ctx.Done()
	return sub.Close()
}

func (d *MailDispatcher) handle(ctx context.Context, data []byte) error {
	log := logger.FromContext(ctx)

	var msg models.MailMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Error().Err(err).Msg("dropping undecodable mail message")
		return nil
	}

	if err := d.sender.Send(ctx, msg); err != nil {
		log.Warn().Err(err).Msg("mail delivery failed, will be redelivered")
		return err
	}
	return nil
}
