// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/intern-portal/internal/cpf"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/models"
)

type candidateRepository struct {
	docs DocumentStore
}

// NewCandidateRepository returns a [CandidateRepository] over docs.
func NewCandidateRepository(docs DocumentStore) CandidateRepository {
	return &candidateRepository{docs: docs}
}

func (r *candidateRepository) Create(ctx context.Context, rec models.CandidateRecord) (models.CandidateRecord, error) {
	rec.CPF = cpf.Clean(rec.CPF)
	rec.SchemaVersion = models.CandidateSchemaVersion

	body, err := encode(rec)
	if err != nil {
		return models.CandidateRecord{}, err
	}

	doc, err := r.docs.CreateIfAbsent(ctx, Document{Collection: CollectionCandidates, Key: rec.CPF, Body: body})
	if errors.Is(err, ErrDocumentExists) {
		return models.CandidateRecord{}, ErrCandidateAlreadyExists
	}
	if err != nil {
		return models.CandidateRecord{}, fmt.Errorf("create candidate: %w", err)
	}

	rec.Version = doc.Version
	return rec, nil
}

func (r *candidateRepository) Get(ctx context.Context, cpfValue string) (models.CandidateRecord, error) {
	doc, err := r.docs.Get(ctx, CollectionCandidates, cpf.Clean(cpfValue))
	if errors.Is(err, ErrDocumentNotFound) {
		return models.CandidateRecord{}, ErrCandidateNotFound
	}
	if err != nil {
		return models.CandidateRecord{}, fmt.Errorf("get candidate: %w", err)
	}
	return r.fromDocument(ctx, doc)
}

func (r *candidateRepository) Update(ctx context.Context, cpfValue string, mutate func(*models.CandidateRecord) error) (models.CandidateRecord, error) {
	key := cpf.Clean(cpfValue)

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		rec, err := r.Get(ctx, key)
		if err != nil {
			return models.CandidateRecord{}, err
		}

		if err = mutate(&rec); err != nil {
			return models.CandidateRecord{}, err
		}
		// the key never moves
		rec.CPF = key

		body, err := encode(rec)
		if err != nil {
			return models.CandidateRecord{}, err
		}

		doc, err := r.docs.CompareAndSwap(ctx, Document{Collection: CollectionCandidates, Key: key, Body: body}, rec.Version)
		switch {
		case err == nil:
			rec.Version = doc.Version
			return rec, nil
		case errors.Is(err, ErrVersionConflict):
			logger.FromContext(ctx).Debug().Int("attempt", attempt+1).Str("cpf", cpf.Mask(key)).Msg("candidate changed concurrently, retrying")
			continue
		case errors.Is(err, ErrDocumentNotFound):
			return models.CandidateRecord{}, ErrCandidateNotFound
		default:
			return models.CandidateRecord{}, fmt.Errorf("update candidate: %w", err)
		}
	}

	return models.CandidateRecord{}, fmt.Errorf("update candidate: %w", ErrVersionConflict)
}

func (r *candidateRepository) Delete(ctx context.Context, cpfValue string) error {
	err := r.docs.Delete(ctx, CollectionCandidates, cpf.Clean(cpfValue))
	if errors.Is(err, ErrDocumentNotFound) {
		return ErrCandidateNotFound
	}
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) List(ctx context.Context) ([]models.CandidateRecord, error) {
	docs, err := r.docs.List(ctx, CollectionCandidates)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	out := make([]models.CandidateRecord, 0, len(docs))
	for _, doc := range docs {
		rec, err := r.fromDocument(ctx, doc)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// fromDocument decodes a stored candidate and upgrades old schema versions
// in memory. The upgraded shape is persisted on the next write.
func (r *candidateRepository) fromDocument(ctx context.Context, doc Document) (models.CandidateRecord, error) {
	rec, err := decode[models.CandidateRecord](doc)
	if err != nil {
		return models.CandidateRecord{}, err
	}
	if rec.Upgrade() {
		logger.FromContext(ctx).Debug().Str("cpf", cpf.Mask(doc.Key)).Msg("upgraded candidate record schema")
	}
	rec.Version = doc.Version
	if rec.CPF == "" {
		rec.CPF = doc.Key
	}
	return rec, nil
}
