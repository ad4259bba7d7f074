// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MailMessage is a rendered email ready to be handed to a delivery backend.
type MailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`

	// ResetURL is the link embedded in the bodies. Kept for the delivery
	// backend's own templates.
	ResetURL string `json:"resetUrl,omitempty"`

	// DisplayName is the recipient's name used in the greeting.
	DisplayName string `json:"userName,omitempty"`
}
