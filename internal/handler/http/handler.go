package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/service"
)

type Handler struct {
	services *service.Services

	// metrics serves GET /metrics. Nil disables the route.
	metrics http.Handler

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// WithMetrics exposes the collectors of g on GET /metrics.
func (h *Handler) WithMetrics(g prometheus.Gatherer) *Handler {
	if g != nil {
		h.metrics = promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return h
}
