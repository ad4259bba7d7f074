package workers

import (
	"context"
	"time"
)

// SettingsWatcher re-reads the program settings on an interval so every
// instance sees changes made by the others.
type SettingsWatcher struct {
	settings SettingsRefresher
	interval time.Duration
}

func NewSettingsWatcher(settings SettingsRefresher, interval time.Duration) *SettingsWatcher {
	return &SettingsWatcher{settings: settings, interval: interval}
}

func (w *SettingsWatcher) Run(ctx context.Context) error {
	return every(ctx, w.interval, "settings-watcher", func(ctx context.Context) error {
		_, err := w.settings.Refresh(ctx)
		return err
	})
}
