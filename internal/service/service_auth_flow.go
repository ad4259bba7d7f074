// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/intern-portal/internal/adapter"
	"github.com/MKhiriev/intern-portal/internal/cpf"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/validators"
	"github.com/MKhiriev/intern-portal/models"
)

const tracerName = "github.com/MKhiriev/intern-portal/internal/service"

// Operation names used in spans and metrics.
const (
	OpLogin          = "login"
	OpRegister       = "register"
	OpForgotPassword = "forgot_password"
	OpOpenReset      = "open_reset"
	OpResetPassword  = "reset_password"
)

// authFlowService orchestrates the credential, token, session and mail
// services. It holds no state of its own between calls.
type authFlowService struct {
	credentials CredentialService
	resetTokens ResetTokenService
	sessions    SessionService
	mailer      adapter.Mailer
	validator   validators.Validator

	metrics *Metrics
	tracer  trace.Tracer
}

func NewAuthFlowService(
	credentials CredentialService,
	resetTokens ResetTokenService,
	sessions SessionService,
	mailer adapter.Mailer,
	validator validators.Validator,
	metrics *Metrics,
) AuthFlowService {
	return &authFlowService{
		credentials: credentials,
		resetTokens: resetTokens,
		sessions:    sessions,
		mailer:      mailer,
		validator:   validator,
		metrics:     metrics,
		tracer:      otel.Tracer(tracerName),
	}
}

// start opens a span for op. The returned func records the outcome and
// ends the span.
func (a *authFlowService) start(ctx context.Context, op string) (context.Context, func(error)) {
	ctx, span := a.tracer.Start(ctx, "auth."+op)
	return ctx, func(err error) {
		a.metrics.observeAuth(op, err)
		span.SetAttributes(attribute.String("auth.outcome", outcomeOf(err)))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcomeOf(err))
		}
		span.End()
	}
}

// Login never tells a missing account from a wrong password.
func (a *authFlowService) Login(ctx context.Context, in models.LoginInput) (res models.LoginResult, err error) {
	ctx, done := a.start(ctx, OpLogin)
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	if err = a.validator.Validate(ctx, in); err != nil {
		return models.LoginResult{State: models.StateAnonymous}, err
	}

	profile, err := a.credentials.Authenticate(ctx, in.CPF, in.Password)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidCredentials) {
		log.Info().Str("cpf", cpf.Mask(in.CPF)).Msg("login rejected")
		return models.LoginResult{State: models.StateAnonymous}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResult{State: models.StateAnonymous}, unavailable(err)
	}

	session, err := a.sessions.Create(ctx, profile)
	if err != nil {
		log.Err(err).Msg("session creation failed")
		return models.LoginResult{State: models.StateAnonymous}, unavailable(err)
	}

	return models.LoginResult{State: models.StateAuthenticated, Candidate: profile, Session: &session}, nil
}

// Register signs the new candidate in right away. A taken CPF is reported
// next to the CPF field and still matches ErrConflict.
func (a *authFlowService) Register(ctx context.Context, in models.RegistrationInput) (res models.RegistrationResult, err error) {
	ctx, done := a.start(ctx, OpRegister)
	defer func() { done(err) }()

	if err = a.validator.Validate(ctx, in); err != nil {
		return models.RegistrationResult{State: models.StateRegistering}, err
	}

	profile, err := a.credentials.Register(ctx, in)
	if errors.Is(err, ErrConflict) {
		fields := validators.FieldErrors{}
		fields.Add(validators.FieldCPF, validators.MsgCPFRegistered)
		return models.RegistrationResult{State: models.StateRegistering}, errors.Join(ErrConflict, fields)
	}
	if errors.Is(err, ErrInvalidInput) {
		return models.RegistrationResult{State: models.StateRegistering}, err
	}
	if err != nil {
		return models.RegistrationResult{State: models.StateRegistering}, unavailable(err)
	}

	session, err := a.sessions.Create(ctx, profile)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("session creation after registration failed")
		return models.RegistrationResult{State: models.StateRegistering}, unavailable(err)
	}

	return models.RegistrationResult{State: models.StateAuthenticated, Candidate: profile, Session: &session}, nil
}

// ForgotPassword issues a reset token for the account matching both CPF and
// email and mails the link to the registered address. A failed send leaves
// the token stored; it simply expires.
func (a *authFlowService) ForgotPassword(ctx context.Context, in models.ForgotPasswordInput) (state models.FlowState, err error) {
	ctx, done := a.start(ctx, OpForgotPassword)
	defer func() { done(err) }()
	log := logger.FromContext(ctx)

	if err = a.validator.Validate(ctx, in); err != nil {
		return models.StateRequestingReset, err
	}

	profile, err := a.credentials.Get(ctx, in.CPF)
	if errors.Is(err, ErrNotFound) {
		return models.StateRequestingReset, ErrNotFound
	}
	if err != nil {
		return models.StateRequestingReset, unavailable(err)
	}

	if !strings.EqualFold(strings.TrimSpace(profile.Email), strings.TrimSpace(in.Email)) {
		log.Info().Str("cpf", cpf.Mask(profile.CPF)).Msg("reset requested with a different email")
		return models.StateRequestingReset, ErrEmailMismatch
	}

	token, err := a.resetTokens.Issue(ctx, profile.CPF, profile.Email)
	if err != nil {
		return models.StateRequestingReset, unavailable(err)
	}

	if err = a.mailer.SendPasswordResetEmail(ctx, profile.Email, token, profile.FullName); err != nil {
		log.Err(err).Str("cpf", cpf.Mask(profile.CPF)).Msg("reset email was not sent")
		return models.StateRequestingReset, unavailable(err)
	}

	return models.StateTokenIssued, nil
}

// OpenReset checks the token from a reset link. An unusable token ends the
// flow in reset_failed with a message telling the user how to start over.
func (a *authFlowService) OpenReset(ctx context.Context, token string) (view models.ResetView, err error) {
	ctx, done := a.start(ctx, OpOpenReset)
	defer func() { done(err) }()

	claims, err := a.resetTokens.Validate(ctx, token)
	if isTokenError(err) {
		return failedResetView(err), err
	}
	if err != nil {
		return models.ResetView{State: models.StateValidating}, unavailable(err)
	}
	return models.ResetView{State: models.StateResetting, Email: claims.Email}, nil
}

// ResetPassword sets the new password and then consumes the token. If a
// concurrent submission consumed it first the password was still changed
// and ErrTokenUsed is returned.
func (a *authFlowService) ResetPassword(ctx context.Context, in models.ResetPasswordInput) (view models.ResetView, err error) {
	ctx, done := a.start(ctx, OpResetPassword)
	defer func() { done(err) }()

	if strings.TrimSpace(in.Token) == "" {
		return failedResetView(ErrTokenInvalid), ErrTokenInvalid
	}

	if err = a.validator.Validate(ctx, in, validators.FieldPassword, validators.FieldConfirmPassword); err != nil {
		return models.ResetView{State: models.StateResetting}, err
	}

	claims, err := a.resetTokens.Validate(ctx, in.Token)
	if isTokenError(err) {
		return failedResetView(err), err
	}
	if err != nil {
		return models.ResetView{State: models.StateResetting}, unavailable(err)
	}

	err = a.credentials.ResetPassword(ctx, claims.CPF, in.Password)
	switch {
	case errors.Is(err, ErrNotFound):
		// the account was deleted after the link was sent
		return failedResetView(err), err
	case errors.Is(err, ErrInvalidInput):
		return models.ResetView{State: models.StateResetting}, err
	case err != nil:
		return models.ResetView{State: models.StateResetting}, unavailable(err)
	}

	if err = a.resetTokens.Consume(ctx, in.Token); err != nil {
		if !isTokenError(err) {
			return models.ResetView{State: models.StateResetting}, unavailable(err)
		}
		logger.FromContext(ctx).Warn().Err(err).Str("cpf", cpf.Mask(claims.CPF)).Msg("reset token consumed concurrently")
		return failedResetView(err), err
	}

	logger.FromContext(ctx).Info().Str("cpf", cpf.Mask(claims.CPF)).Msg("password reset")
	return models.ResetView{State: models.StateReset, Message: MsgPasswordChanged, Email: claims.Email}, nil
}

// failedResetView is the terminal view for an unusable token or account.
func failedResetView(err error) models.ResetView {
	return models.ResetView{State: models.StateResetFailed, Message: UserMessage(err) + " " + MsgRestartReset}
}
