package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/intern-portal/internal/logger"
)

// NATSMailer queues reset emails on a JetStream subject. The mail dispatcher
// worker delivers them at least once. A nil error means the message was queued,
// not delivered: delivery failures are retried by the dispatcher and never reach
// the requester. The stream drops messages older than the reset-token TTL.
type NATSMailer struct {
	bus      Publisher
	subject  string
	composer resetComposer
}

func newNATSMailer(bus Publisher, subject string, composer resetComposer) *NATSMailer {
	return &NATSMailer{bus: bus, subject: subject, composer: composer}
}

func (m *NATSMailer) SendPasswordResetEmail(ctx context.Context, email, token, displayName string) error {
	msg, err := m.composer.compose(email, token, displayName)
	if err != nil {
		return err
	}

	if err = m.bus.Publish(ctx, m.subject, msg); err != nil {
		return fmt.Errorf("%w: publish: %w", ErrMailDeliveryFailed, err)
	}
	logger.FromContext(ctx).Debug().Str("subject", m.subject).Str("to", maskEmail(email)).Msg("reset email queued")
	return nil
}

// maskEmail keeps the first letter of the local part and the domain.
func maskEmail(email string) string {
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			if i == 0 {
				return email
			}
			return email[:1] + "***" + email[i:]
		}
	}
	return "***"
}
