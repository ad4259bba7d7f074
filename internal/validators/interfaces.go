// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the portal's forms and
// the password strength policy.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldErrors: every problem found in a form, keyed by field name, so a
//     form can show all of them at once.
//   - ValidatePassword: the five-rule password policy.
//
// Usage patterns:
//  1. Inject a Validator into services or handlers.
//  2. Call Validate with context, value, and optional field names to enforce rules.
//  3. Check errors.Is(err, ErrInvalidInput) and type-assert FieldErrors for details.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
