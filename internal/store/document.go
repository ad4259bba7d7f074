// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "time"

// Collection names.
const (
	CollectionCandidates  = "candidates"
	CollectionResetTokens = "password_reset_tokens"
	CollectionSettings    = "settings"
)

// Document is one stored JSON body with its concurrency version.
type Document struct {
	Collection string
	Key        string
	Body       []byte

	// Version starts at 1 and grows by one on every successful write.
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d Document) clone() Document {
	body := make([]byte, len(d.Body))
	copy(body, d.Body)
	d.Body = body
	return d
}
