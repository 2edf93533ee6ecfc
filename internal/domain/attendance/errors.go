package attendance

import "errors"

var (
	ErrAlreadyClockedIn     = errors.New("you have already clocked in today")
	ErrNotClockedIn         = errors.New("you have not clocked in today")
	ErrAlreadyClockedOut    = errors.New("you have already clocked out today")
	ErrOutsideOfficeRadius  = errors.New("you are outside the allowed office radius")
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrMockLocationDisabled = errors.New("simulated location is not allowed")
)
