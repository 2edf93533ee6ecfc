package response

import (
	"errors"
	"net/http"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/attendance"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/auth"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/leave"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/office"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/user"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/location"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "You have already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "You have already clocked out today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "You have not clocked in today")
	case errors.Is(err, attendance.ErrOutsideOfficeRadius):
		Forbidden(w, "You are outside the allowed office radius")
	case errors.Is(err, attendance.ErrMockLocationDisabled):
		Forbidden(w, "Simulated location is not allowed")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Location acquisition errors
	case errors.Is(err, location.ErrPermissionDenied):
		Forbidden(w, "Location access was denied")
	case errors.Is(err, location.ErrPositionUnavailable):
		BadRequest(w, "Location information is unavailable", nil)
	case errors.Is(err, location.ErrTimeout):
		BadRequest(w, "Location request timed out", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyDecided):
		Conflict(w, "Leave request has already been decided")

	// Office domain errors
	case errors.Is(err, office.ErrOfficeNotFound):
		NotFound(w, "Office not found")
	case errors.Is(err, office.ErrOfficeInUse):
		Conflict(w, "Office still has employees assigned")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrNIPExists):
		Conflict(w, "NIP already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
