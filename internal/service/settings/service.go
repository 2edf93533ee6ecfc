package settings

import (
	"context"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: settingsRepo}
}

// GetSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (settings.SettingsResponse, error) {
	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}
	return settings.ToResponse(current), nil
}

// UpdateSettings implements settings.SettingsService. Unset fields keep
// their current value.
func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	if req.AllowMockLocation != nil {
		current.AllowMockLocation = *req.AllowMockLocation
	}
	if req.AutoClockOut != nil {
		current.AutoClockOut = *req.AutoClockOut
	}
	if req.ReminderEnabled != nil {
		current.ReminderEnabled = *req.ReminderEnabled
	}

	updated, err := s.SettingsRepository.Update(ctx, current)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	return settings.ToResponse(updated), nil
}
