package settings

import "time"

// Settings is the single process-wide configuration row. Read at session
// start, mutated only by admin actions.
type Settings struct {
	AllowMockLocation bool
	AutoClockOut      bool
	ReminderEnabled   bool
	UpdatedAt         time.Time
}

// Defaults mirrors the values a fresh installation starts with.
func Defaults() Settings {
	return Settings{
		AllowMockLocation: false,
		AutoClockOut:      false,
		ReminderEnabled:   true,
	}
}
