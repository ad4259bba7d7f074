// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Settings are the program-wide switches administrators control.
type Settings struct {
	// AllowCandidateEdit lets candidates edit their own profile after registration.
	AllowCandidateEdit bool `json:"allowCandidateEdit"`

	UpdatedAt time.Time `json:"updatedAt"`

	// Version is the store revision the settings were read at.
	Version int64 `json:"-"`
}

// DefaultSettings returns the settings used when none were saved yet.
func DefaultSettings() Settings {
	return Settings{AllowCandidateEdit: false}
}
