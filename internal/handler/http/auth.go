// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/service"
	"github.com/MKhiriev/intern-portal/internal/utils"
	"github.com/MKhiriev/intern-portal/models"
)

// forgotPasswordResponse acknowledges a reset request. The token only
// travels by email.
type forgotPasswordResponse struct {
	State   models.FlowState `json:"state"`
	Message string           `json:"message"`
}

const msgResetEmailSent = "If the data is correct, a reset link was sent to your email."

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func setSessionHeader(w http.ResponseWriter, session *models.Session) {
	if session != nil {
		w.Header().Set("Authorization", "Bearer "+session.String())
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in models.RegistrationInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.AuthFlowService.Register(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	setSessionHeader(w, res.Session)
	utils.WriteJSON(w, res, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.AuthFlowService.Login(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("role", string(res.Candidate.Role)).Msg("candidate signed in")
	setSessionHeader(w, res.Session)
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var in models.ForgotPasswordInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	state, err := h.services.AuthFlowService.ForgotPassword(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, forgotPasswordResponse{State: state, Message: msgResetEmailSent}, http.StatusOK)
}

// validateResetToken answers whether the token of a reset link can still
// be used. The body always has the TokenValidation shape.
func (h *Handler) validateResetToken(w http.ResponseWriter, r *http.Request) {
	view, err := h.services.AuthFlowService.OpenReset(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		if statusFromError(err) >= http.StatusInternalServerError {
			logger.FromRequest(r).Err(err).Msg("reset token check failed")
		}
		utils.WriteJSON(w, models.TokenValidation{Valid: false, Error: service.UserMessage(err)}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.TokenValidation{Valid: true, Email: view.Email}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var in models.ResetPasswordInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.AuthFlowService.ResetPassword(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}
