// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists portal data as versioned JSON documents.
//
// A [DocumentStore] exposes the few primitives every backend can make atomic:
// get by key, create-if-absent, compare-and-swap on a version counter, delete
// and full-collection reads. Typed repositories build candidate, reset-token
// and settings persistence on top of it.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/intern-portal/models"
)

// DocumentStore is a keyed JSON document store with optimistic concurrency.
type DocumentStore interface {
	// Get returns the document or [ErrDocumentNotFound].
	Get(ctx context.Context, collection, key string) (Document, error)

	// CreateIfAbsent atomically inserts doc with version 1.
	// Returns [ErrDocumentExists] when the key is taken.
	CreateIfAbsent(ctx context.Context, doc Document) (Document, error)

	// CompareAndSwap replaces the body only if the stored version equals
	// expectedVersion, and increments the version.
	// Returns [ErrVersionConflict] or [ErrDocumentNotFound].
	CompareAndSwap(ctx context.Context, doc Document, expectedVersion int64) (Document, error)

	// Delete removes the document or returns [ErrDocumentNotFound].
	Delete(ctx context.Context, collection, key string) error

	// List returns every document of a collection ordered by key.
	List(ctx context.Context, collection string) ([]Document, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the backend's resources.
	Close() error
}

// CandidateRepository stores candidate records keyed by normalized CPF.
type CandidateRepository interface {
	Create(ctx context.Context, rec models.CandidateRecord) (models.CandidateRecord, error)
	Get(ctx context.Context, cpf string) (models.CandidateRecord, error)

	// Update applies mutate to the current record and writes it back with
	// compare-and-swap, re-reading and re-applying on concurrent changes.
	// An error from mutate aborts the update and is returned as is.
	Update(ctx context.Context, cpf string, mutate func(*models.CandidateRecord) error) (models.CandidateRecord, error)

	Delete(ctx context.Context, cpf string) error
	List(ctx context.Context) ([]models.CandidateRecord, error)
}

// ResetTokenRepository stores issued reset tokens keyed by token digest.
type ResetTokenRepository interface {
	Create(ctx context.Context, token models.PasswordResetToken) error
	GetByHash(ctx context.Context, tokenHash string) (models.PasswordResetToken, error)

	// MarkUsed flips used from false to true exactly once.
	// Returns [ErrResetTokenAlreadyUsed] to every caller but the first.
	MarkUsed(ctx context.Context, tokenHash string, usedAt time.Time) error
}

// SettingsRepository stores the single program settings document.
type SettingsRepository interface {
	// Get returns the saved settings, creating the defaults when none exist.
	Get(ctx context.Context) (models.Settings, error)

	// Update applies mutate with compare-and-swap semantics.
	Update(ctx context.Context, mutate func(*models.Settings)) (models.Settings, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
