package service

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/intern-portal/internal/adapter"
	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/crypto"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/store"
	"github.com/MKhiriev/intern-portal/internal/validators"
)

type Services struct {
	CredentialService CredentialService
	ResetTokenService ResetTokenService
	SettingsService   SettingsService
	ProfileService    ProfileService
	SessionService    SessionService
	AuthFlowService   AuthFlowService
	AppInfoService    AppInfoService
}

// NewServices wires every service over storages. Counters are registered on reg.
func NewServices(storages *store.Storages, mailer adapter.Mailer, cfg config.StructuredConfig, reg prometheus.Registerer, logger *logger.Logger) (*Services, error) {
	digester, err := crypto.NewTokenDigester(cfg.App.ResetTokenKey)
	if err != nil {
		return nil, fmt.Errorf("reset token digester: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	metrics := NewMetrics(reg)
	validator := validators.NewCandidateValidator()
	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)

	credentials := NewCredentialService(storages.Candidates, hasher, validator)
	resetTokens := NewResetTokenService(storages.ResetTokens, digester, cfg.App.ResetTokenTTL, metrics)
	settings := NewSettingsService(storages.Settings)
	sessions := NewSessionService(cfg.App)

	return &Services{
		CredentialService: credentials,
		ResetTokenService: resetTokens,
		SettingsService:   settings,
		ProfileService:    NewProfileService(credentials, settings),
		SessionService:    sessions,
		AuthFlowService:   NewAuthFlowService(credentials, resetTokens, sessions, mailer, validator, metrics),
		AppInfoService:    appInfo,
	}, nil
}
