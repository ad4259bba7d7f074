package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/intern-portal/internal/validators"
)

var (
	// ErrInvalidInput is matched by every validation failure, including
	// [validators.FieldErrors].
	ErrInvalidInput = validators.ErrInvalidInput
	ErrInvalidCPF   = fmt.Errorf("%w: invalid cpf", ErrInvalidInput)

	ErrNotFound           = errors.New("candidate not found")
	ErrConflict           = errors.New("cpf already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailMismatch      = errors.New("email does not match the registered one")

	ErrTokenInvalid = errors.New("reset token is invalid")
	ErrTokenExpired = errors.New("reset token is expired")
	ErrTokenUsed    = errors.New("reset token was already used")

	ErrUnavailable     = errors.New("service unavailable")
	ErrEditingDisabled = errors.New("profile editing is disabled")
	ErrForbidden       = errors.New("forbidden")

	ErrSessionInvalid        = errors.New("session token is expired or invalid")
	ErrTokenCreationFailed   = errors.New("session token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// User-facing messages.
const (
	MsgInvalidCredentials = "Invalid CPF or password"
	MsgNotFound           = "CPF not found"
	MsgEmailMismatch      = "The email does not match the one registered for this CPF"
	MsgTokenInvalid       = "Invalid or unknown reset link."
	MsgTokenExpired       = "This reset link has expired. Request a new one."
	MsgTokenUsed          = "This reset link was already used."
	MsgUnavailable        = "The service is unavailable right now. Please try again later."
	MsgEditingDisabled    = "Profile editing is currently disabled"
	MsgForbidden          = "You are not allowed to do this"
	MsgConflict           = validators.MsgCPFRegistered
	MsgInvalidInput       = "Check the highlighted fields"
	MsgSessionInvalid     = "Your session has expired. Sign in again."
	MsgPasswordChanged    = "Password changed. You can sign in with the new password."
	MsgRestartReset       = "Go back to \"Forgot password\" to request a new link."
)

// UserMessage returns the message shown to a user for err.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConflict):
		return MsgConflict
	case errors.Is(err, ErrInvalidInput):
		return MsgInvalidInput
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, ErrNotFound):
		return MsgNotFound
	case errors.Is(err, ErrEmailMismatch):
		return MsgEmailMismatch
	case errors.Is(err, ErrTokenInvalid):
		return MsgTokenInvalid
	case errors.Is(err, ErrTokenExpired):
		return MsgTokenExpired
	case errors.Is(err, ErrTokenUsed):
		return MsgTokenUsed
	case errors.Is(err, ErrEditingDisabled):
		return MsgEditingDisabled
	case errors.Is(err, ErrForbidden):
		return MsgForbidden
	case errors.Is(err, ErrSessionInvalid):
		return MsgSessionInvalid
	default:
		return MsgUnavailable
	}
}

// unavailable wraps a backend failure so callers can match ErrUnavailable
// while logs keep the cause.
func unavailable(err error) error {
	if errors.Is(err, ErrUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

func isTokenError(err error) bool {
	return errors.Is(err, ErrTokenInvalid) || errors.Is(err, ErrTokenExpired) || errors.Is(err, ErrTokenUsed)
}
