// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/logger"
)

// Storages bundles the repositories the services depend on.
type Storages struct {
	Documents   DocumentStore
	Candidates  CandidateRepository
	ResetTokens ResetTokenRepository
	Settings    SettingsRepository
}

// NewStorages connects the configured backend, migrates it and builds the
// repositories on top of it.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var docs DocumentStore

	switch cfg.Driver {
	case config.DriverMemory:
		docs = NewMemoryDocumentStore()

	case config.DriverPostgres, config.DriverSQLite:
		db, err := connect(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate %s: %w", cfg.Driver, err)
		}
		docs = WithRetries(NewSQLDocumentStore(db), db, cfg.MaxRetries)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	log.Info().Str("driver", cfg.Driver).Msg("document store ready")
	return NewStoragesFromDocuments(docs), nil
}

// NewStoragesFromDocuments builds the repositories over an existing store.
func NewStoragesFromDocuments(docs DocumentStore) *Storages {
	return &Storages{
		Documents:   docs,
		Candidates:  NewCandidateRepository(docs),
		ResetTokens: NewResetTokenRepository(docs),
		Settings:    NewSettingsRepository(docs),
	}
}

// Close releases the underlying backend.
func (s *Storages) Close() error {
	return s.Documents.Close()
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.Driver == config.DriverSQLite {
		return NewConnectSQLite(ctx, cfg, log)
	}
	return NewConnectPostgres(ctx, cfg, log)
}
