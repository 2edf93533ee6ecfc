package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/settings"
)

type SettingsRepository struct {
	mu      sync.Mutex
	current settings.Settings
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{current: settings.Defaults()}
}

func (r *SettingsRepository) Get(_ context.Context) (settings.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, nil
}

func (r *SettingsRepository) Update(_ context.Context, s settings.Settings) (settings.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.UpdatedAt = time.Now()
	r.current = s
	return r.current, nil
}
