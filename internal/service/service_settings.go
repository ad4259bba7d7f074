// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/store"
	"github.com/MKhiriev/intern-portal/models"
)

type settingsService struct {
	repo store.SettingsRepository

	mu      sync.RWMutex
	current models.Settings
	subs    map[chan models.Settings]struct{}

	now func() time.Time
}

// NewSettingsService starts from the default settings until Load succeeds.
func NewSettingsService(repo store.SettingsRepository) SettingsService {
	return &settingsService{
		repo:    repo,
		current: models.DefaultSettings(),
		subs:    make(map[chan models.Settings]struct{}),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *settingsService) Current() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *settingsService) Load(ctx context.Context) (models.Settings, error) {
	return s.Refresh(ctx)
}

func (s *settingsService) Refresh(ctx context.Context) (models.Settings, error) {
	fresh, err := s.repo.Get(ctx)
	if err != nil {
		return s.Current(), unavailable(err)
	}
	s.publish(ctx, fresh)
	return fresh, nil
}

func (s *settingsService) Update(ctx context.Context, allowCandidateEdit bool) (models.Settings, error) {
	saved, err := s.repo.Update(ctx, func(st *models.Settings) {
		st.AllowCandidateEdit = allowCandidateEdit
		st.UpdatedAt = s.now()
	})
	if err != nil {
		return s.Current(), unavailable(err)
	}

	logger.FromContext(ctx).Info().Bool("allow_candidate_edit", allowCandidateEdit).Msg("settings updated")
	s.publish(ctx, saved)
	return saved, nil
}

func (s *settingsService) Subscribe(ctx context.Context) <-chan models.Settings {
	ch := make(chan models.Settings, 1)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, ch)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

// publish stores fresh and, when it differs from the snapshot, hands it to
// every subscriber without blocking.
func (s *settingsService) publish(ctx context.Context, fresh models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fresh.Version == s.current.Version && fresh.AllowCandidateEdit == s.current.AllowCandidateEdit {
		return
	}
	s.current = fresh
	logger.FromContext(ctx).Debug().Int64("version", fresh.Version).Msg("settings snapshot changed")

	for ch := range s.subs {
		select {
		case ch <- fresh:
		default:
			// drop the stale value so the latest one fits
			select {
			case <-ch:
			default:
			}
			ch <- fresh
		}
	}
}
