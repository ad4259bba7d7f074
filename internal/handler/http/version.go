package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/utils"
)

// getServerVersion answers in plain text unless the client asks for JSON,
// in which case the full build info is returned.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context()))); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("version response not written")
	}
}
