package store

import (
	"encoding/json"
	"fmt"
)

// maxUpdateAttempts bounds the read-modify-write loops of the repositories.
const maxUpdateAttempts = 5

func encode(v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	return body, nil
}

func decode[T any](doc Document) (T, error) {
	var v T
	if err := json.Unmarshal(doc.Body, &v); err != nil {
		return v, fmt.Errorf("%w: %s/%s: %w", ErrDecodingDocument, doc.Collection, doc.Key, err)
	}
	return v, nil
}
