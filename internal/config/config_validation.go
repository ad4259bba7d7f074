// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

const (
	defaultTokenIssuer          = "intern-portal"
	defaultTokenDuration        = 12 * time.Hour
	defaultResetTokenTTL        = 24 * time.Hour
	defaultPasswordHashCost     = 10
	defaultMaxRetries           = 3
	defaultRequestTimeout       = 30 * time.Second
	defaultMailTimeout          = 10 * time.Second
	defaultMailSubject          = "portal.mail.password-reset"
	defaultSettingsPollInterval = 30 * time.Second
	defaultMailDurable          = "mail-dispatcher"
	defaultServiceName          = "intern-portal"
)

// applyDefaults fills every unset field that has a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.TokenIssuer, defaultTokenIssuer)
	setDefault(&cfg.App.TokenDuration, defaultTokenDuration)
	setDefault(&cfg.App.ResetTokenTTL, defaultResetTokenTTL)
	setDefault(&cfg.App.PasswordHashCost, defaultPasswordHashCost)
	setDefault(&cfg.Storage.DB.Driver, DriverPostgres)
	setDefault(&cfg.Storage.DB.MaxRetries, defaultMaxRetries)
	setDefault(&cfg.Server.RequestTimeout, defaultRequestTimeout)
	setDefault(&cfg.Mail.Timeout, defaultMailTimeout)
	setDefault(&cfg.Mail.Subject, defaultMailSubject)
	setDefault(&cfg.Workers.SettingsPollInterval, defaultSettingsPollInterval)
	setDefault(&cfg.Workers.MailDurable, defaultMailDurable)
	setDefault(&cfg.Telemetry.ServiceName, defaultServiceName)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// validate checks that the final merged [StructuredConfig] can start a server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.ResetTokenKey == "" {
		return fmt.Errorf("%w: token sign key and reset token key are required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 || cfg.App.ResetTokenTTL < 0 {
		return fmt.Errorf("%w: durations must be positive", ErrInvalidAppConfigs)
	}

	if err := cfg.validateStorage(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}

	switch cfg.Mail.Kind {
	case "":
	case MailKindHTTP:
		if cfg.Mail.APIAddress == "" {
			return fmt.Errorf("%w: http mail requires an API address", ErrInvalidMailConfigs)
		}
	case MailKindNATS:
		if cfg.Mail.NATSURL == "" {
			return fmt.Errorf("%w: nats mail requires a server URL", ErrInvalidMailConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidMailConfigs, cfg.Mail.Kind)
	}

	if cfg.Workers.MailDispatch && (cfg.Mail.NATSURL == "" || cfg.Mail.APIAddress == "") {
		return fmt.Errorf("%w: mail dispatch needs both a NATS URL and a mail API address", ErrInvalidWorkerConfigs)
	}

	return nil
}

// validateStorage only checks what is needed to open the document store.
func (cfg *StructuredConfig) validateStorage() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s requires a DSN", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	return nil
}
