// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PasswordResetToken is the stored record of an issued reset token.
//
// The plaintext token only ever exists in the reset link. The record is keyed
// by TokenHash, a keyed digest of the plaintext, so a leaked store does not
// yield usable links.
type PasswordResetToken struct {
	// ID identifies the issuance in logs and audit trails. It is not a secret.
	ID string `json:"id"`

	// TokenHash is the hex digest of the plaintext token. Also the document key.
	TokenHash string `json:"tokenHash"`

	// CPF is the normalized CPF of the account the token resets.
	CPF string `json:"cpf"`

	// Email is the address the link was sent to.
	Email string `json:"email"`

	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`

	// Used becomes true exactly once, on consumption.
	Used   bool       `json:"used"`
	UsedAt *time.Time `json:"usedAt,omitempty"`

	// Version is the store revision the record was read at.
	Version int64 `json:"-"`
}

// IsExpired reports whether now is strictly after the expiry instant.
func (t PasswordResetToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// ResetClaims is what a valid token proves: which account may be reset.
type ResetClaims struct {
	CPF       string    `json:"cpf"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TokenValidation is the wire shape of a token check.
type TokenValidation struct {
	Valid bool   `json:"valid"`
	CPF   string `json:"cpf,omitempty"`
	Email string `json:"email,omitempty"`
	Error string `json:"error,omitempty"`
}
