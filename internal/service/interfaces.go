// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the portal's business logic: candidate credentials,
// reset tokens, program settings, sessions and the auth flows built from
// them. Services speak in the error taxonomy of errors.go; store and
// transport errors never leak past this package unwrapped.
package service

import (
	"context"

	"github.com/MKhiriev/intern-portal/models"
)

// CredentialService owns candidate records and their password hashes.
type CredentialService interface {
	Register(ctx context.Context, in models.RegistrationInput) (models.CandidateProfile, error)
	Authenticate(ctx context.Context, cpf, password string) (models.CandidateProfile, error)

	Get(ctx context.Context, cpf string) (models.CandidateProfile, error)
	Exists(ctx context.Context, cpf string) (bool, error)
	List(ctx context.Context) ([]models.CandidateProfile, error)

	Update(ctx context.Context, cpf string, upd models.CandidateUpdate) (models.CandidateProfile, error)
	SetRole(ctx context.Context, cpf string, role models.Role) (models.CandidateProfile, error)

	// ResetPassword replaces the password hash. Policy checks belong to the caller.
	ResetPassword(ctx context.Context, cpf, newPassword string) error
	Delete(ctx context.Context, cpf string) error
}

// ResetTokenService issues and redeems single-use password reset tokens.
type ResetTokenService interface {
	// Issue returns the plaintext token. Only its digest is stored.
	Issue(ctx context.Context, cpf, email string) (string, error)
	Validate(ctx context.Context, token string) (models.ResetClaims, error)
	Consume(ctx context.Context, token string) error
}

// EditPolicy answers whether candidates may edit their own profile.
type EditPolicy interface {
	Current() models.Settings
}

// SettingsService keeps an in-memory snapshot of the program settings.
type SettingsService interface {
	EditPolicy

	Load(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, allowCandidateEdit bool) (models.Settings, error)

	// Refresh re-reads the store and notifies subscribers when something changed.
	Refresh(ctx context.Context) (models.Settings, error)

	// Subscribe delivers every change until ctx ends, then closes the channel.
	// A slow subscriber only sees the latest value.
	Subscribe(ctx context.Context) <-chan models.Settings
}

// ProfileService is the candidate-facing side of profile edits.
type ProfileService interface {
	UpdateOwnProfile(ctx context.Context, cpf string, upd models.CandidateUpdate) (models.CandidateProfile, error)
}

// SessionService issues and checks session tokens.
type SessionService interface {
	Create(ctx context.Context, profile models.CandidateProfile) (models.Session, error)
	Parse(ctx context.Context, token string) (models.Session, error)
}

// AuthFlowService drives the login, registration and password recovery flows.
type AuthFlowService interface {
	Login(ctx context.Context, in models.LoginInput) (models.LoginResult, error)
	Register(ctx context.Context, in models.RegistrationInput) (models.RegistrationResult, error)

	// ForgotPassword never returns the token; it only reaches the user by email.
	ForgotPassword(ctx context.Context, in models.ForgotPasswordInput) (models.FlowState, error)
	OpenReset(ctx context.Context, token string) (models.ResetView, error)
	ResetPassword(ctx context.Context, in models.ResetPasswordInput) (models.ResetView, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
