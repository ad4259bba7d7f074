package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/intern-portal/internal/service"
	"github.com/MKhiriev/intern-portal/internal/utils"
	"github.com/MKhiriev/intern-portal/models"
)

// settingsResponse is the public view of the program settings.
type settingsResponse struct {
	AllowCandidateEdit bool `json:"allowCandidateEdit"`
}

type updateSettingsRequest struct {
	AllowCandidateEdit *bool `json:"allowCandidateEdit"`
}

// adminCandidateUpdate is what an administrator may change on a record.
type adminCandidateUpdate struct {
	models.CandidateUpdate
	Role *models.Role `json:"role,omitempty"`
}

func (h *Handler) getOwnProfile(w http.ResponseWriter, r *http.Request) {
	cpf, ok := utils.GetCPFFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrSessionInvalid)
		return
	}

	profile, err := h.services.CredentialService.Get(r.Context(), cpf)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateOwnProfile(w http.ResponseWriter, r *http.Request) {
	cpf, ok := utils.GetCPFFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrSessionInvalid)
		return
	}

	var upd models.CandidateUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.UpdateOwnProfile(r.Context(), cpf, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	st := h.services.SettingsService.Current()
	utils.WriteJSON(w, settingsResponse{AllowCandidateEdit: st.AllowCandidateEdit}, http.StatusOK)
}

func (h *Handler) listCandidates(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.CredentialService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, profiles, http.StatusOK)
}

func (h *Handler) getCandidate(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.CredentialService.Get(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateCandidate(w http.ResponseWriter, r *http.Request) {
	cpf := chi.URLParam(r, "cpf")

	var upd adminCandidateUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.CredentialService.Update(r.Context(), cpf, upd.CandidateUpdate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if upd.Role != nil && *upd.Role != profile.Role {
		if profile, err = h.services.CredentialService.SetRole(r.Context(), cpf, *upd.Role); err != nil {
			writeError(w, r, err)
			return
		}
	}
	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) deleteCandidate(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CredentialService.Delete(r.Context(), chi.URLParam(r, "cpf")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.AllowCandidateEdit == nil {
		writeError(w, r, service.ErrInvalidInput)
		return
	}

	st, err := h.services.SettingsService.Update(r.Context(), *req.AllowCandidateEdit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, settingsResponse{AllowCandidateEdit: st.AllowCandidateEdit}, http.StatusOK)
}
