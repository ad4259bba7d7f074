// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strings"
)

const (
	emailMaxLength  = 254
	localMaxLength  = 64
	domainMaxLength = 253
	tldMinLength    = 2
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// IsValidEmail reports whether email is an acceptable contact address.
// Surrounding whitespace is ignored.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > emailMaxLength {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}
	if !emailPattern.MatchString(email) {
		return false
	}

	local, domain, _ := strings.Cut(email, "@")
	if local == "" || len(local) > localMaxLength || !validDots(local) {
		return false
	}
	if domain == "" || len(domain) > domainMaxLength || !validDots(domain) {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}

	tld := domain[strings.LastIndexByte(domain, '.')+1:]
	return len(tld) >= tldMinLength
}

// validDots rejects leading, trailing and consecutive dots.
func validDots(s string) bool {
	return !strings.HasPrefix(s, ".") && !strings.HasSuffix(s, ".") && !strings.Contains(s, "..")
}
