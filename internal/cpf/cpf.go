// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cpf

import "strings"

// Length is the number of digits of a normalized CPF.
const Length = 11

// Clean removes every character that is not an ASCII digit.
func Clean(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValid reports whether value, once cleaned, is a CPF with correct check digits.
// Sequences of one repeated digit are rejected even though their check digits match.
func IsValid(value string) bool {
	digits := Clean(value)
	if len(digits) != Length {
		return false
	}
	if allSame(digits) {
		return false
	}

	d := make([]int, Length)
	for i := range digits {
		d[i] = int(digits[i] - '0')
	}

	return checkDigit(d, 10) == d[9] && checkDigit(d, 11) == d[10]
}

// Format renders value as ddd.ddd.ddd-dd. Input that does not clean to
// exactly 11 digits is returned unchanged.
func Format(value string) string {
	digits := Clean(value)
	if len(digits) != Length {
		return value
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

// Mask hides all but the last four digits. Used when a CPF has to appear in logs.
func Mask(value string) string {
	digits := Clean(value)
	if len(digits) != Length {
		return "***"
	}
	return "***.***.*" + digits[7:9] + "-" + digits[9:11]
}

// checkDigit computes the check digit for weight factor f (10 or 11) over
// the first f-1 digits.
func checkDigit(d []int, f int) int {
	total := 0
	for i := 0; i < f-1; i++ {
		total += d[i] * (f - i)
	}
	r := (total * 10) % 11
	if r == 10 {
		return 0
	}
	return r
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
