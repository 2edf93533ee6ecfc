package attendance

import "context"

// Stats aggregates attendance counts by derived status label.
type Stats struct {
	Total      int64 `json:"total"`
	OnTime     int64 `json:"on_time"`
	Late       int64 `json:"late"`
	EarlyLeave int64 `json:"early_leave"`
}

// AttendanceRepository owns the one-record-per-(user,date) invariant. It
// never re-validates geofencing; that gate belongs to the calling service.
type AttendanceRepository interface {
	// Create inserts the day's record. A concurrent duplicate for the same
	// (user, date) must fail with ErrAlreadyClockedIn.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByUserAndDate returns nil (no error) when the day has no record yet.
	GetByUserAndDate(ctx context.Context, userID, date string) (*Attendance, error)

	// CompleteClockOut sets the clock-out half of the record. The update is
	// conditional on clock-out still being unset; a lost race must fail with
	// ErrAlreadyClockedOut.
	CompleteClockOut(ctx context.Context, att Attendance) error

	ListByUser(ctx context.Context, userID string, filter HistoryFilter) ([]Attendance, int64, error)
	List(ctx context.Context, filter Filter) ([]Attendance, int64, error)

	// CountByStatus aggregates derived status labels; userID nil means all users.
	CountByStatus(ctx context.Context, userID *string, startDate, endDate *string) (Stats, error)

	// Delete removes a record (admin data correction only).
	Delete(ctx context.Context, id string) error
}
