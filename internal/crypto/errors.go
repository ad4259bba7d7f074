package crypto

import "errors"

var (
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
	ErrEmptyPassword   = errors.New("password is empty")
	ErrMalformedHash   = errors.New("malformed password hash")
	ErrTokenTooShort   = errors.New("token must have at least 32 random bytes")
	ErrEmptyDigestKey  = errors.New("token digest key is empty")
)
