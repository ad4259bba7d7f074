package adapter

import "errors"

var (
	// ErrMailerNotConfigured is returned when no mail backend is configured.
	ErrMailerNotConfigured = errors.New("email service is not configured")

	// ErrMailDeliveryFailed is returned when the backend refused or lost the message.
	ErrMailDeliveryFailed = errors.New("email delivery failed")

	ErrEmptyRecipient = errors.New("email recipient is empty")
	ErrNilBus         = errors.New("nil bus")
	ErrNilHandler     = errors.New("nil handler")
)
