package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/settings"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements settings.SettingsRepository. The app_settings table holds a
// single row; when nothing was persisted yet the built-in defaults apply.
func (r *settingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT allow_mock_location, auto_clock_out, reminder_enabled, updated_at
		FROM app_settings
		LIMIT 1
	`

	var s settings.Settings
	err := q.QueryRow(ctx, query).Scan(
		&s.AllowMockLocation, &s.AutoClockOut, &s.ReminderEnabled, &s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Defaults(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return s, nil
}

// Update implements settings.SettingsRepository.
func (r *settingsRepository) Update(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	// The table has a constant primary key so concurrent updates collapse
	// onto the single row.
	query := `
		INSERT INTO app_settings (id, allow_mock_location, auto_clock_out, reminder_enabled, updated_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET allow_mock_location = EXCLUDED.allow_mock_location,
		    auto_clock_out = EXCLUDED.auto_clock_out,
		    reminder_enabled = EXCLUDED.reminder_enabled,
		    updated_at = NOW()
		RETURNING allow_mock_location, auto_clock_out, reminder_enabled, updated_at
	`

	var updated settings.Settings
	err := q.QueryRow(ctx, query,
		s.AllowMockLocation, s.AutoClockOut, s.ReminderEnabled,
	).Scan(
		&updated.AllowMockLocation, &updated.AutoClockOut,
		&updated.ReminderEnabled, &updated.UpdatedAt,
	)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}

	return updated, nil
}
