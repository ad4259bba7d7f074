// Package workers runs the portal's background jobs: the settings poller, the
// settings change log and the queued mail dispatcher.
// It defines the Worker interface and a Workers aggregate that runs them
// together until the context ends or one of them fails.
package workers

import (
	"context"
	"io"

	"github.com/MKhiriev/intern-portal/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is done and returns nil on a clean stop. Any other
// error stops the sibling workers.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// SettingsRefresher re-reads the program settings.
type SettingsRefresher interface {
	Refresh(ctx context.Context) (models.Settings, error)
}

// SettingsSubscriber streams settings changes until ctx ends.
type SettingsSubscriber interface {
	Subscribe(ctx context.Context) <-chan models.Settings
}

// Subscriber delivers queued messages to fn. A message whose handler fails
// is redelivered later.
type Subscriber interface {
	Subscribe(ctx context.Context, subj, durable string, fn func(ctx context.Context, data []byte) error) (io.Closer, error)
}

// MessageSender delivers a rendered email.
type MessageSender interface {
	Send(ctx context.Context, msg models.MailMessage) error
}
