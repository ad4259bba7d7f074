// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the portal
// server and the admin CLI. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds credential and session settings.
	App App `envPrefix:"APP_"`

	// Storage holds the document store backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts for HTTP and gRPC.
	Server Server `envPrefix:"SERVER_"`

	// Mail selects and configures the password-reset email backend.
	Mail Mail `envPrefix:"MAIL_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Telemetry holds tracing exporter settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the .env file loaded before the environment is read.
	// Defaults to ".env"; a missing file is not an error.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds credential lifecycle and session settings.
type App struct {
	// TokenSignKey signs and verifies session JWTs. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a session stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ResetTokenKey keys the digest under which reset tokens are stored. Required.
	// Rotating it invalidates every outstanding reset link.
	// Env: APP_RESET_TOKEN_KEY
	ResetTokenKey string `env:"RESET_TOKEN_KEY"`

	// ResetTokenTTL is the validity window of a reset link.
	// Env: APP_RESET_TOKEN_TTL
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL"`

	// ResetBaseURL is the portal origin used to build reset links
	// (e.g. "https://estagio.pge.pa.gov.br").
	// Env: APP_RESET_BASE_URL
	ResetBaseURL string `env:"RESET_BASE_URL"`

	// PasswordHashCost is the bcrypt work factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is exposed via /api/version. Defaults to the linker-injected
	// build version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// BuildDate and BuildCommit come from linker flags only.
	BuildDate   string
	BuildCommit string

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB selects the document store backend.
type DB struct {
	// Driver is one of "postgres", "sqlite" or "memory".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string (a file path for sqlite).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxRetries bounds retries of transient store failures.
	// Env: STORAGE_DB_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" of the gRPC health endpoint.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Mail backends.
const (
	MailKindHTTP = "http"
	MailKindNATS = "nats"
)

// Mail configures where password-reset emails go.
// With an empty Kind every send fails with a "not configured" error.
type Mail struct {
	// Kind is "http" (mail API, failures reach the requester) or "nats" (queued,
	// delivered at least once by the dispatcher).
	// Env: MAIL_KIND
	Kind string `env:"KIND"`

	// APIAddress is the base URL of the mail API.
	// Env: MAIL_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// Timeout bounds one call to the mail API.
	// Env: MAIL_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// NATSURL is the NATS server URL for the "nats" kind and the dispatcher.
	// Env: MAIL_NATS_URL
	NATSURL string `env:"NATS_URL"`

	// Subject is the JetStream subject reset emails are published on.
	// Env: MAIL_SUBJECT
	Subject string `env:"SUBJECT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SettingsPollInterval is how often program settings are re-read.
	// Env: WORKERS_SETTINGS_POLL_INTERVAL
	SettingsPollInterval time.Duration `env:"SETTINGS_POLL_INTERVAL"`

	// MailDispatch enables the JetStream consumer that delivers queued emails.
	// Env: WORKERS_MAIL_DISPATCH
	MailDispatch bool `env:"MAIL_DISPATCH"`

	// MailDurable is the durable consumer name of the dispatcher.
	// Env: WORKERS_MAIL_DURABLE
	MailDurable string `env:"MAIL_DURABLE"`
}

// Telemetry configures trace export. Tracing is off without an endpoint.
type Telemetry struct {
	// OTLPEndpoint is the "host:port" of an OTLP/HTTP collector.
	// Env: TELEMETRY_OTLP_ENDPOINT
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`

	// Insecure disables TLS towards the collector.
	// Env: TELEMETRY_INSECURE
	Insecure bool `env:"INSECURE"`

	// ServiceName is the service.name resource attribute.
	// Env: TELEMETRY_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources in the following priority order (last source wins for non-zero fields):
//  1. .env file (only fills variables not already set)
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// Defaults are applied to whatever is still unset before validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// GetStorageConfig loads the configuration for offline tools that only open
// the document store. jsonPath, when set, takes the place of CONFIG.
// Only the storage section is validated.
func GetStorageConfig(jsonPath string) (*StructuredConfig, error) {
	b := newConfigBuilder().withDotEnv().withEnv()
	if jsonPath != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonPath})
	}
	return b.withJSON().buildWith((*StructuredConfig).validateStorage)
}
