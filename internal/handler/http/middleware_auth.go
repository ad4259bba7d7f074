package http

import (
	"net/http"

	"github.com/MKhiriev/intern-portal/internal/cpf"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/service"
	"github.com/MKhiriev/intern-portal/internal/utils"
)

// auth is an HTTP middleware that enforces session authentication.
//
// It reads the bearer token from the "Authorization" header, verifies it via
// [service.SessionService.Parse] and stores the session in the request
// context with [utils.WithSession] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header is not "Bearer <token>" ([ErrInvalidAuthorizationHeader]).
//   - The token is expired, forged or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, service.ErrSessionInvalid)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(ErrInvalidAuthorizationHeader).Send()
			writeError(w, r, service.ErrSessionInvalid)
			return
		}

		session, err := h.services.SessionService.Parse(r.Context(), tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := utils.WithSession(r.Context(), session)
		if subject, err := session.CPF(); err == nil {
			l := log.With().Str("cpf", cpf.Mask(subject)).Logger()
			ctx = l.WithContext(ctx)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// admin lets through only sessions with the administrator role. It must run
// after auth.
func (h *Handler) admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := utils.GetSessionFromContext(r.Context())
		if !ok {
			writeError(w, r, service.ErrSessionInvalid)
			return
		}
		if !session.IsAdministrator() {
			writeError(w, r, service.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
