package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/logger"
)

func TestInit_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := Init(context.Background(), config.Telemetry{ServiceName: "intern-portal"}, "test", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestExporterOptions(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		insecure bool
		wantLen  int
		wantErr  bool
	}{
		{name: "host and port", endpoint: "collector:4318", wantLen: 1},
		{name: "host and port insecure", endpoint: "collector:4318", insecure: true, wantLen: 2},
		{name: "http url", endpoint: "http://collector:4318", wantLen: 2},
		{name: "https url with path", endpoint: "https://collector.example.com/otlp/v1/traces", wantLen: 2},
		{name: "url without host", endpoint: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := exporterOptions(tt.endpoint, tt.insecure)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidEndpoint)
				return
			}
			require.NoError(t, err)
			assert.Len(t, opts, tt.wantLen)
		})
	}
}
