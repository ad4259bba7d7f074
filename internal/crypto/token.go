// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/intern-portal/internal/utils"
)

// ResetTokenBytes is the amount of entropy in a reset token.
const ResetTokenBytes = 32

// GenerateToken returns n random bytes from the system CSPRNG, hex-encoded.
func GenerateToken(n int) (string, error) {
	if n < ResetTokenBytes {
		return "", ErrTokenTooShort
	}

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

type hmacDigester struct {
	key string
}

// NewTokenDigester returns a TokenDigester computing HMAC-SHA256 with key.
// The digest has to be deterministic because it is the lookup key of the
// stored token, which rules out a salted password hash here.
func NewTokenDigester(key string) (TokenDigester, error) {
	if key == "" {
		return nil, ErrEmptyDigestKey
	}
	return &hmacDigester{key: key}, nil
}

func (d *hmacDigester) Digest(token string) string {
	return utils.HashString(token, d.key)
}

// VerifyDigest reports in constant time whether a stored digest matches the
// one recomputed from the presented token.
func VerifyDigest(computed, stored string) bool {
	return stored != "" && utils.EqualHex(computed, stored)
}
