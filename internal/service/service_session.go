package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/utils"
	"github.com/MKhiriev/intern-portal/models"
)

type sessionService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration
}

func NewSessionService(cfg config.App) SessionService {
	return &sessionService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
	}
}

// Create issues a signed session for the candidate. The subject is the CPF.
func (s *sessionService) Create(ctx context.Context, profile models.CandidateProfile) (models.Session, error) {
	session, err := utils.GenerateJWTToken(s.tokenIssuer, profile.CPF, profile.Role, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return session, nil
}

// Parse verifies signature, issuer and expiry. Every failure is reported as
// ErrSessionInvalid.
func (s *sessionService) Parse(ctx context.Context, token string) (models.Session, error) {
	session, err := utils.ValidateAndParseJWTToken(token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Session{}, ErrSessionInvalid
	}
	return session, nil
}
