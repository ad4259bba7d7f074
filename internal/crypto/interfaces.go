// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the server's credential primitives: password hashing
// and generation and digesting of single-use reset tokens.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns passwords into salted, slow hashes and checks candidates against them.
type PasswordHasher interface {
	// Hash returns an encoded hash that embeds its own salt and cost.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is (false, nil);
	// an error means the hash itself could not be used.
	Verify(password, hash string) (bool, error)
}

// TokenDigester maps a plaintext reset token to the digest stored at rest.
type TokenDigester interface {
	// Digest returns a deterministic hex digest of token.
	Digest(token string) string
}
