package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/v1"

	"github.com/MKhiriev/intern-portal/internal/logger"
)

// pingTimeout bounds a single store check.
const pingTimeout = 2 * time.Second

// Pinger reports whether the backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1 service. The overall status follows
// the store: SERVING while it answers pings, NOT_SERVING otherwise.
type Handler struct {
	health *health.Server
	store  Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The status starts as NOT_SERVING until
// the first successful [Handler.Check].
func NewHandler(store Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := health.NewServer()
	h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		health: h,
		store:  store,
		logger: logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Check pings the store once and updates the serving status.
func (h *Handler) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if h.store == nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	} else if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("store ping failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	return status
}

// Watch re-checks the store every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) error {
	h.Check(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// Shutdown marks every service NOT_SERVING ahead of a graceful stop.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
