// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/MKhiriev/intern-portal/internal/cpf"
	"github.com/MKhiriev/intern-portal/internal/crypto"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/store"
	"github.com/MKhiriev/intern-portal/models"
)

type resetTokenService struct {
	tokens   store.ResetTokenRepository
	digester crypto.TokenDigester
	ttl      time.Duration
	metrics  *Metrics

	now      func() time.Time
	generate func(n int) (string, error)
}

// NewResetTokenService constructs a ResetTokenService whose tokens live for ttl.
func NewResetTokenService(tokens store.ResetTokenRepository, digester crypto.TokenDigester, ttl time.Duration, metrics *Metrics) ResetTokenService {
	return &resetTokenService{
		tokens:   tokens,
		digester: digester,
		ttl:      ttl,
		metrics:  metrics,
		now:      func() time.Time { return time.Now().UTC() },
		generate: crypto.GenerateToken,
	}
}

func (s *resetTokenService) Issue(ctx context.Context, cpfValue, email string) (string, error) {
	token, err := s.generate(crypto.ResetTokenBytes)
	if err != nil {
		return "", unavailable(err)
	}

	now := s.now()
	rec := models.PasswordResetToken{
		ID:        ulid.Make().String(),
		TokenHash: s.digester.Digest(token),
		CPF:       cpf.Clean(cpfValue),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err = s.tokens.Create(ctx, rec); err != nil {
		logger.FromContext(ctx).Err(err).Str("cpf", cpf.Mask(rec.CPF)).Msg("storing reset token failed")
		return "", unavailable(err)
	}

	s.metrics.observeToken(TokenEventIssued, 1)
	logger.FromContext(ctx).Info().Str("token_id", rec.ID).Str("cpf", cpf.Mask(rec.CPF)).Time("expires_at", rec.ExpiresAt).Msg("reset token issued")
	return token, nil
}

// Validate fails closed: unknown, then used, then expired.
func (s *resetTokenService) Validate(ctx context.Context, token string) (models.ResetClaims, error) {
	rec, err := s.lookup(ctx, token)
	if err != nil {
		return models.ResetClaims{}, s.reject(err)
	}

	switch {
	case rec.Used:
		return models.ResetClaims{}, s.reject(ErrTokenUsed)
	case rec.IsExpired(s.now()):
		return models.ResetClaims{}, s.reject(ErrTokenExpired)
	}

	return models.ResetClaims{CPF: rec.CPF, Email: rec.Email, ExpiresAt: rec.ExpiresAt}, nil
}

// Consume marks the token used. Of concurrent consumers exactly one wins;
// the others get ErrTokenUsed.
func (s *resetTokenService) Consume(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrTokenInvalid
	}

	err := s.tokens.MarkUsed(ctx, s.digester.Digest(token), s.now())
	switch {
	case err == nil:
		s.metrics.observeToken(TokenEventConsumed, 1)
		return nil
	case errors.Is(err, store.ErrResetTokenAlreadyUsed):
		return ErrTokenUsed
	case errors.Is(err, store.ErrResetTokenNotFound):
		return ErrTokenInvalid
	default:
		return unavailable(err)
	}
}

func (s *resetTokenService) lookup(ctx context.Context, token string) (models.PasswordResetToken, error) {
	if strings.TrimSpace(token) == "" {
		return models.PasswordResetToken{}, ErrTokenInvalid
	}

	digest := s.digester.Digest(token)
	rec, err := s.tokens.GetByHash(ctx, digest)
	if errors.Is(err, store.ErrResetTokenNotFound) {
		return models.PasswordResetToken{}, ErrTokenInvalid
	}
	if err != nil {
		return models.PasswordResetToken{}, unavailable(err)
	}
	// the record must carry the digest it is stored under
	if !crypto.VerifyDigest(digest, rec.TokenHash) {
		return models.PasswordResetToken{}, ErrTokenInvalid
	}
	return rec, nil
}

func (s *resetTokenService) reject(err error) error {
	if isTokenError(err) {
		s.metrics.observeToken(TokenEventRejected, 1)
	}
	return err
}
