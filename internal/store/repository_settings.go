package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/intern-portal/models"
)

const settingsKey = "global"

type settingsRepository struct {
	docs DocumentStore
}

// NewSettingsRepository returns a [SettingsRepository] over docs.
func NewSettingsRepository(docs DocumentStore) SettingsRepository {
	return &settingsRepository{docs: docs}
}

func (r *settingsRepository) Get(ctx context.Context) (models.Settings, error) {
	doc, err := r.docs.Get(ctx, CollectionSettings, settingsKey)
	if errors.Is(err, ErrDocumentNotFound) {
		doc, err = r.createDefaults(ctx)
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("get settings: %w", err)
	}

	s, err := decode[models.Settings](doc)
	if err != nil {
		return models.Settings{}, err
	}
	s.Version = doc.Version
	return s, nil
}

func (r *settingsRepository) Update(ctx context.Context, mutate func(*models.Settings)) (models.Settings, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		s, err := r.Get(ctx)
		if err != nil {
			return models.Settings{}, err
		}

		mutate(&s)
		body, err := encode(s)
		if err != nil {
			return models.Settings{}, err
		}

		doc, err := r.docs.CompareAndSwap(ctx, Document{Collection: CollectionSettings, Key: settingsKey, Body: body}, s.Version)
		if errors.Is(err, ErrVersionConflict) || errors.Is(err, ErrDocumentNotFound) {
			continue
		}
		if err != nil {
			return models.Settings{}, fmt.Errorf("update settings: %w", err)
		}
		s.Version = doc.Version
		return s, nil
	}
	return models.Settings{}, fmt.Errorf("update settings: %w", ErrVersionConflict)
}

// createDefaults saves the default settings. Losing the race to another
// writer is fine; the winner's document is read back.
func (r *settingsRepository) createDefaults(ctx context.Context) (Document, error) {
	body, err := encode(models.DefaultSettings())
	if err != nil {
		return Document{}, err
	}
	doc, err := r.docs.CreateIfAbsent(ctx, Document{Collection: CollectionSettings, Key: settingsKey, Body: body})
	if errors.Is(err, ErrDocumentExists) {
		return r.docs.Get(ctx, CollectionSettings, settingsKey)
	}
	return doc, err
}
