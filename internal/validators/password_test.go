// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{
			name:     "strong password",
			password: "Abcdef1!",
			want:     []string{},
		},
		{
			name:     "lowercase only reports three rules",
			password: "abcdefgh",
			want:     []string{MsgPasswordNoUppercase, MsgPasswordNoDigit, MsgPasswordNoSymbol},
		},
		{
			name:     "empty violates every rule in order",
			password: "",
			want: []string{
				MsgPasswordTooShort, MsgPasswordNoLowercase, MsgPasswordNoUppercase,
				MsgPasswordNoDigit, MsgPasswordNoSymbol,
			},
		},
		{
			name:     "short but otherwise fine",
			password: "Ab1!",
			want:     []string{MsgPasswordTooShort},
		},
		{
			name:     "backslash and quote count as symbols",
			password: `Abcdef1\`,
			want:     []string{},
		},
		{
			name:     "space is not a symbol",
			password: "Abcdef1 ",
			want:     []string{MsgPasswordNoSymbol},
		},
		{
			name:     "accented letters are not ascii lowercase",
			password: "ÁÉÍÓÚ1!A",
			want:     []string{MsgPasswordNoLowercase},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePassword(tt.password)
			assert.Equal(t, tt.want, got.Errors)
			assert.Equal(t, len(tt.want) == 0, got.IsValid)
		})
	}
}

func TestValidatePassword_EveryListedSymbolAccepted(t *testing.T) {
	for _, r := range PasswordSymbols {
		got := ValidatePassword("Abcdef1" + string(r))
		assert.True(t, got.IsValid, "symbol %q", r)
	}
}
