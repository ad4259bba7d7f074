package main

import (
	"context"

	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/crypto"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/service"
	"github.com/MKhiriev/intern-portal/internal/store"
	"github.com/MKhiriev/intern-portal/internal/validators"
)

// deps holds the constructors commands use, replaceable in tests.
type deps struct {
	loadConfig   func(path string) (*config.StructuredConfig, error)
	openStorages func(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.Storages, error)
	logger       *logger.Logger
}

func defaultDeps() *deps {
	return &deps{
		loadConfig:   config.GetStorageConfig,
		openStorages: store.NewStorages,
		logger:       logger.NewLogger("portalctl"),
	}
}

// session is an opened store plus the services commands work through.
type session struct {
	storages    *store.Storages
	credentials service.CredentialService
	settings    service.SettingsService
}

func (d *deps) open(ctx context.Context, configPath string) (*session, error) {
	cfg, err := d.loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return nil, err
	}

	storages, err := d.openStorages(ctx, cfg.Storage.DB, d.logger)
	if err != nil {
		return nil, err
	}

	return &session{
		storages: storages,
		credentials: service.NewCredentialService(
			storages.Candidates,
			crypto.NewBcryptHasher(cfg.App.PasswordHashCost),
			validators.NewCandidateValidator(),
		),
		settings: service.NewSettingsService(storages.Settings),
	}, nil
}

func (s *session) Close() error {
	return s.storages.Close()
}
