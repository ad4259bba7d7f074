// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "strings"

// NormalizeText turns line breaks into spaces, collapses runs of whitespace
// and trims the result. Applied to free-text form fields before storage.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
