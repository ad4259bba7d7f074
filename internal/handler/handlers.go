package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/handler/grpc"
	"github.com/MKhiriev/intern-portal/internal/handler/http"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a handler per configured address. The HTTP handler
// exposes gatherer on /metrics; the gRPC health status follows store.
func NewHandlers(services *service.Services, store grpc.Pinger, gatherer prometheus.Gatherer, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger).WithMetrics(gatherer)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(store, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
