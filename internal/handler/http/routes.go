package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Get("/api/auth/reset-password", h.validateResetToken)
		r.Post("/api/auth/reset-password", h.resetPassword)

		r.Get("/api/version", h.getServerVersion)
		if h.metrics != nil {
			r.Method("GET", "/metrics", h.metrics)
		}
	})

	// signed-in candidates
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/candidates/me", h.getOwnProfile)
		r.Put("/api/candidates/me", h.updateOwnProfile)
		r.Get("/api/settings", h.getSettings)
	})

	// administrators
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.admin)
		r.Get("/api/admin/candidates", h.listCandidates)
		r.Get("/api/admin/candidates/{cpf}", h.getCandidate)
		r.Put("/api/admin/candidates/{cpf}", h.updateCandidate)
		r.Delete("/api/admin/candidates/{cpf}", h.deleteCandidate)
		r.Put("/api/admin/settings", h.updateSettings)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
