package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidInput       = "invalid_input"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeNotFound           = "not_found"
	OutcomeConflict           = "conflict"
	OutcomeEmailMismatch      = "email_mismatch"
	OutcomeTokenInvalid       = "token_invalid"
	OutcomeTokenExpired       = "token_expired"
	OutcomeTokenUsed          = "token_used"
	OutcomeUnavailable        = "unavailable"
)

// Reset token events.
const (
	TokenEventIssued   = "issued"
	TokenEventRejected = "rejected"
	TokenEventConsumed = "consumed"
)

// Metrics holds the service counters. A nil *Metrics records nothing.
type Metrics struct {
	authOperations *prometheus.CounterVec
	resetTokens    *prometheus.CounterVec
}

// NewMetrics registers the service counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		authOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "auth_operations_total",
			Help:      "Auth flow operations by outcome.",
		}, []string{"operation", "outcome"}),
		resetTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Name:      "reset_tokens_total",
			Help:      "Password reset token lifecycle events.",
		}, []string{"event"}),
	}
	reg.MustRegister(m.authOperations, m.resetTokens)
	return m
}

func (m *Metrics) observeAuth(operation string, err error) {
	if m == nil {
		return
	}
	m.authOperations.WithLabelValues(operation, outcomeOf(err)).Inc()
}

func (m *Metrics) observeToken(event string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.resetTokens.WithLabelValues(event).Add(float64(n))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrConflict):
		return OutcomeConflict
	case errors.Is(err, ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, ErrInvalidCredentials):
		return OutcomeInvalidCredentials
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrEmailMismatch):
		return OutcomeEmailMismatch
	case errors.Is(err, ErrTokenInvalid):
		return OutcomeTokenInvalid
	case errors.Is(err, ErrTokenExpired):
		return OutcomeTokenExpired
	case errors.Is(err, ErrTokenUsed):
		return OutcomeTokenUsed
	default:
		return OutcomeUnavailable
	}
}
