// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build integration

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/models"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("portal_test"),
		postgres.WithUsername("portal"),
		postgres.WithPassword("portal"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

func exerciseStorages(t *testing.T, s *Storages) {
	t.Helper()
	ctx := context.Background()

	rec, err := s.Candidates.Create(ctx, models.CandidateRecord{CPF: "529.982.247-25", FullName: "Maria", Role: models.RoleCandidate})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Version)

	_, err = s.Candidates.Create(ctx, models.CandidateRecord{CPF: "52998224725"})
	require.ErrorIs(t, err, ErrCandidateAlreadyExists)

	updated, err := s.Candidates.Update(ctx, "52998224725", func(r *models.CandidateRecord) error {
		r.Semester = 6
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	tok := models.PasswordResetToken{TokenHash: "digest", CPF: "52998224725", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, s.ResetTokens.Create(ctx, tok))
	require.NoError(t, s.ResetTokens.MarkUsed(ctx, "digest", time.Now()))
	require.ErrorIs(t, s.ResetTokens.MarkUsed(ctx, "digest", time.Now()), ErrResetTokenAlreadyUsed)

	settings, err := s.Settings.Update(ctx, func(st *models.Settings) { st.AllowCandidateEdit = true })
	require.NoError(t, err)
	assert.True(t, settings.AllowCandidateEdit)

	list, err := s.Candidates.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 6, list[0].Semester)
}

func TestStorages_Postgres(t *testing.T) {
	dsn := startPostgres(t)

	s, err := NewStorages(context.Background(), config.DB{Driver: config.DriverPostgres, DSN: dsn, MaxRetries: 2}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStorages(t, s)
}

func TestStorages_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "portal.db")

	s, err := NewStorages(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: dsn, MaxRetries: 2}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStorages(t, s)
}
