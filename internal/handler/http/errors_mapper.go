package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/service"
	"github.com/MKhiriev/intern-portal/internal/utils"
	"github.com/MKhiriev/intern-portal/internal/validators"
)

// errorStatusMap is checked in order. A duplicate CPF carries both
// ErrConflict and field errors, so ErrConflict comes first.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrConflict, http.StatusConflict},
	{ErrInvalidJSON, http.StatusBadRequest},
	{service.ErrInvalidInput, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrSessionInvalid, http.StatusUnauthorized},
	{service.ErrTokenInvalid, http.StatusBadRequest},
	{service.ErrTokenExpired, http.StatusGone},
	{service.ErrTokenUsed, http.StatusGone},
	{service.ErrEmailMismatch, http.StatusBadRequest},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrEditingDisabled, http.StatusForbidden},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrUnavailable, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError renders err with its status and user-facing message. Causes
// stay in the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	resp := errorResponse{Error: service.UserMessage(err)}
	if errors.Is(err, ErrInvalidJSON) {
		resp.Error = ErrInvalidJSON.Error()
	}
	if fields, ok := validators.AsFieldErrors(err); ok {
		resp.Fields = fields
	}

	utils.WriteJSON(w, resp, status)
}
