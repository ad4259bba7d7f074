// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/intern-portal/models"
)

type resetTokenRepository struct {
	docs DocumentStore
}

// NewResetTokenRepository returns a [ResetTokenRepository] over docs.
func NewResetTokenRepository(docs DocumentStore) ResetTokenRepository {
	return &resetTokenRepository{docs: docs}
}

func (r *resetTokenRepository) Create(ctx context.Context, token models.PasswordResetToken) error {
	body, err := encode(token)
	if err != nil {
		return err
	}

	_, err = r.docs.CreateIfAbsent(ctx, Document{Collection: CollectionResetTokens, Key: token.TokenHash, Body: body})
	if err != nil {
		return fmt.Errorf("create reset token: %w", err)
	}
	return nil
}

func (r *resetTokenRepository) GetByHash(ctx context.Context, tokenHash string) (models.PasswordResetToken, error) {
	doc, err := r.docs.Get(ctx, CollectionResetTokens, tokenHash)
	if errors.Is(err, ErrDocumentNotFound) {
		return models.PasswordResetToken{}, ErrResetTokenNotFound
	}
	if err != nil {
		return models.PasswordResetToken{}, fmt.Errorf("get reset token: %w", err)
	}

	token, err := decode[models.PasswordResetToken](doc)
	if err != nil {
		return models.PasswordResetToken{}, err
	}
	token.Version = doc.Version
	return token, nil
}

func (r *resetTokenRepository) MarkUsed(ctx context.Context, tokenHash string, usedAt time.Time) error {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		token, err := r.GetByHash(ctx, tokenHash)
		if err != nil {
			return err
		}
		if token.Used {
			return ErrResetTokenAlreadyUsed
		}

		token.Used = true
		token.UsedAt = &usedAt
		body, err := encode(token)
		if err != nil {
			return err
		}

		_, err = r.docs.CompareAndSwap(ctx, Document{Collection: CollectionResetTokens, Key: tokenHash, Body: body}, token.Version)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, ErrVersionConflict):
			// re-read; a concurrent consumer most likely won
			continue
		case errors.Is(err, ErrDocumentNotFound):
			return ErrResetTokenNotFound
		default:
			return fmt.Errorf("mark reset token used: %w", err)
		}
	}
	return ErrResetTokenAlreadyUsed
}
