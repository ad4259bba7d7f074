// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginInput is the login form. CPF may be formatted.
type LoginInput struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

// ForgotPasswordInput is the first step of password recovery.
type ForgotPasswordInput struct {
	CPF   string `json:"cpf"`
	Email string `json:"email"`
}

// ResetPasswordInput carries the token from the reset link and the new password.
type ResetPasswordInput struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	State     FlowState        `json:"state"`
	Candidate CandidateProfile `json:"candidate"`
	Session   *Session         `json:"-"`
}

// RegistrationResult is the outcome of a successful registration.
// A registered candidate is signed in right away.
type RegistrationResult struct {
	State     FlowState        `json:"state"`
	Candidate CandidateProfile `json:"candidate"`
	Session   *Session         `json:"-"`
}

// ResetView describes where the reset-password flow stands.
//
// Message is user-facing. When State is [StateResetFailed] the flow is
// terminal and the user has to request a new link.
type ResetView struct {
	State   FlowState `json:"state"`
	Message string    `json:"message,omitempty"`
	Email   string    `json:"email,omitempty"`
}
