// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a portal session token.
// The subject is the normalized CPF of the signed-in candidate.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Role is copied from the candidate record at sign-in.
	Role Role `json:"role"`
}

// Session wraps a signed session token.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Session struct {
	// Claims are the decoded claims of the token.
	Claims SessionClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// CPF returns the candidate identifier carried in the "sub" claim.
func (s *Session) CPF() (string, error) {
	cpf, err := s.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if cpf == "" {
		return "", errors.New("session token has no subject")
	}
	return cpf, nil
}

// IsAdministrator reports whether the session belongs to an administrator.
func (s *Session) IsAdministrator() bool {
	return s.Claims.Role == RoleAdministrator
}

// String returns the compact JWS serialization of the token.
func (s *Session) String() string {
	return s.SignedString
}
