package service

import (
	"context"

	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/models"
)

type appInfoService struct {
	build models.AppBuildInfo
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	build := models.NewAppBuildInfo(cfg.Version, cfg.BuildDate, cfg.BuildCommit)
	logger.Info().Str("version", build.Version).Str("commit", build.Commit).Msg("portal build")

	return &appInfoService{build: build}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.build.Version
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.build
}
