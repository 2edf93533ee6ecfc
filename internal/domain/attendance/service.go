package attendance

import (
	"context"

	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/geo"
)

// AttendanceService is the business logic for the daily attendance state
// machine: Absent -> ClockedIn -> Complete.
type AttendanceService interface {
	// ClockIn records the first half of the day after the geofence gate.
	ClockIn(ctx context.Context, req ClockRequest) (AttendanceResponse, error)

	// ClockOut records the second half; terminal for the day.
	ClockOut(ctx context.Context, req ClockRequest) (AttendanceResponse, error)

	// CheckGeofence classifies a location against the user's office. Pure
	// with respect to stored state; safe to call on every location refresh.
	CheckGeofence(ctx context.Context, req GeofenceCheckRequest) (geo.GeofenceResult, error)

	// GetMyAttendance lists the authenticated user's history.
	GetMyAttendance(ctx context.Context, userID string, filter HistoryFilter) (ListAttendanceResponse, error)

	// ListAttendance lists records across users (admin).
	ListAttendance(ctx context.Context, filter Filter) (ListAttendanceResponse, error)

	// GetStats aggregates counts by status label for dashboards.
	GetStats(ctx context.Context, userID *string, startDate, endDate *string) (Stats, error)

	// DeleteAttendance removes a record (admin data correction).
	DeleteAttendance(ctx context.Context, id string) error
}
