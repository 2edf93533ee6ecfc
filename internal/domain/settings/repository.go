package settings

import "context"

type SettingsRepository interface {
	// Get returns the stored settings, or Defaults() when nothing was
	// persisted yet.
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, s Settings) (Settings, error)
}
