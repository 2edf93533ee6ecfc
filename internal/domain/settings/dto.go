package settings

type UpdateSettingsRequest struct {
	AllowMockLocation *bool `json:"allow_mock_location,omitempty"`
	AutoClockOut      *bool `json:"auto_clock_out,omitempty"`
	ReminderEnabled   *bool `json:"reminder_enabled,omitempty"`
}

type SettingsResponse struct {
	AllowMockLocation bool `json:"allow_mock_location"`
	AutoClockOut      bool `json:"auto_clock_out"`
	ReminderEnabled   bool `json:"reminder_enabled"`
}

func ToResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		AllowMockLocation: s.AllowMockLocation,
		AutoClockOut:      s.AutoClockOut,
		ReminderEnabled:   s.ReminderEnabled,
	}
}
