package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/logger"
)

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(context.Background(), config.DB{Driver: config.DriverMemory}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, s.Candidates)
	assert.NotNil(t, s.ResetTokens)
	assert.NotNil(t, s.Settings)
	require.NoError(t, s.Documents.Ping(context.Background()))
	require.NoError(t, s.Close())
}

func TestNewStorages_UnknownDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.DB{Driver: "mongo"}, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLiteErrorClassifier_NonSQLiteError(t *testing.T) {
	assert.Equal(t, NonRetryable, NewSQLiteErrorClassifier().Classify(assert.AnError))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "portal.db?_busy_timeout=5000&_journal_mode=WAL", sqliteDSN("portal.db"))
	assert.Equal(t, "file:x.db?mode=rwc", sqliteDSN("file:x.db?mode=rwc"))
}
