package workers

import (
	"context"

	"github.com/MKhiriev/intern-portal/internal/logger"
)

// SettingsChangeLog records every settings change the instance observes,
// including changes other instances saved and the watcher picked up.
type SettingsChangeLog struct {
	settings SettingsSubscriber
}

func NewSettingsChangeLog(settings SettingsSubscriber) *SettingsChangeLog {
	return &SettingsChangeLog{settings: settings}
}

// Run returns once the subscription channel is closed, which happens when ctx ends.
func (w *SettingsChangeLog) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).With().Str("worker", "settings-change-log").Logger()

	for s := range w.settings.Subscribe(ctx) {
		log.Info().
			Bool("allow_candidate_edit", s.AllowCandidateEdit).
			Int64("version", s.Version).
			Time("updated_at", s.UpdatedAt).
			Msg("program settings changed")
	}
	return nil
}
