package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_RequiresVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, logger.Nop())
	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
	assert.Nil(t, svc)
}

func TestAppInfoService_BuildInfo(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.App
		want models.AppBuildInfo
	}{
		{
			name: "all ldflags set",
			cfg:  config.App{Version: "1.2.0", BuildDate: "2026-03-01", BuildCommit: "9f1c2ab"},
			want: models.AppBuildInfo{Version: "1.2.0", Date: "2026-03-01", Commit: "9f1c2ab"},
		},
		{
			name: "missing date and commit",
			cfg:  config.App{Version: "v1.2.3-beta+build.42"},
			want: models.AppBuildInfo{Version: "v1.2.3-beta+build.42", Date: "N/A", Commit: "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, tt.want, svc.GetBuildInfo(context.Background()))
			assert.Equal(t, tt.want.Version, svc.GetAppVersion(context.Background()))
		})
	}
}
