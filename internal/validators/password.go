// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"unicode/utf8"
)

// PasswordMinLength is the shortest accepted password, counted in characters.
const PasswordMinLength = 8

// PasswordMaxBytes is the longest password the bcrypt hasher accepts, in bytes.
// Form validation enforces it on top of the policy rules.
const PasswordMaxBytes = 72

// PasswordSymbols are the characters that satisfy the symbol rule.
const PasswordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// Password policy messages, in rule order.
const (
	MsgPasswordTooShort    = "Password must be at least 8 characters long"
	MsgPasswordNoLowercase = "Password must contain at least one lowercase letter"
	MsgPasswordNoUppercase = "Password must contain at least one uppercase letter"
	MsgPasswordNoDigit     = "Password must contain at least one number"
	MsgPasswordNoSymbol    = "Password must contain at least one special character"
	MsgPasswordTooLong     = "Password must be at most 72 bytes long"
)

// PasswordValidation is the result of checking a password against the policy.
type PasswordValidation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidatePassword evaluates every rule and reports all violations in a
// fixed order: length, lowercase, uppercase, digit, symbol.
// Letter and digit classes are ASCII.
func ValidatePassword(password string) PasswordValidation {
	errs := make([]string, 0, 5)

	if utf8.RuneCountInString(password) < PasswordMinLength {
		errs = append(errs, MsgPasswordTooShort)
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		}
	}

	if !lower {
		errs = append(errs, MsgPasswordNoLowercase)
	}
	if !upper {
		errs = append(errs, MsgPasswordNoUppercase)
	}
	if !digit {
		errs = append(errs, MsgPasswordNoDigit)
	}
	if !symbol {
		errs = append(errs, MsgPasswordNoSymbol)
	}

	return PasswordValidation{IsValid: len(errs) == 0, Errors: errs}
}
