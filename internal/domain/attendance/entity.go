package attendance

import "time"

// ArrivalStatus records how the clock-in compared to the office work-start.
type ArrivalStatus string

const (
	ArrivalOnTime ArrivalStatus = "on_time"
	ArrivalLate   ArrivalStatus = "late"
)

// DepartureStatus records how the clock-out compared to the office work-end.
type DepartureStatus string

const (
	DepartureNormal DepartureStatus = "normal"
	DepartureEarly  DepartureStatus = "early_leave"
)

// Attendance is one calendar day of attendance for one user. Dates are
// YYYY-MM-DD and clock times HH:MM, stored as fixed-format strings for
// round-trip compatibility with existing records and CSV exports.
//
// Arrival and departure are independent facts; the legacy single status
// label is derived, never stored by callers.
type Attendance struct {
	ID     string
	UserID string
	Date   string // YYYY-MM-DD

	ClockInTime       *string // HH:MM
	ClockInLatitude   *float64
	ClockInLongitude  *float64
	ClockInPhotoURL   *string
	ClockOutTime      *string // HH:MM, only after clock-in
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	ClockOutPhotoURL  *string

	ArrivalStatus     ArrivalStatus
	DepartureStatus   *DepartureStatus // nil until clock-out
	LateMinutes       int
	EarlyLeaveMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time

	// Join fields for admin listings
	UserName *string
	UserNIP  *string
}

// StatusLabel derives the single reporting label from the two facts. An
// early departure takes precedence over the arrival state.
func (a *Attendance) StatusLabel() string {
	if a.DepartureStatus != nil && *a.DepartureStatus == DepartureEarly {
		return string(DepartureEarly)
	}
	return string(a.ArrivalStatus)
}

// IsComplete reports whether the day is terminal (both halves recorded).
func (a *Attendance) IsComplete() bool {
	return a.ClockInTime != nil && a.ClockOutTime != nil
}
