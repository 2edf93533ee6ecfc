package report

import (
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/validator"
)

type MonthlyAttendanceReportRequest struct {
	Month  int     `json:"month"`
	Year   int     `json:"year"`
	UserID *string `json:"user_id,omitempty"`
}

func (r *MonthlyAttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeAttendanceSummary is one employee's aggregate for the period.
type EmployeeAttendanceSummary struct {
	UserID            string `json:"user_id"`
	NIP               string `json:"nip"`
	FullName          string `json:"full_name"`
	DaysPresent       int    `json:"days_present"`
	DaysOnTime        int    `json:"days_on_time"`
	DaysLate          int    `json:"days_late"`
	DaysEarlyLeave    int    `json:"days_early_leave"`
	DaysOnLeave       int    `json:"days_on_leave"`
	TotalLateMinutes  int    `json:"total_late_minutes"`
	TotalEarlyMinutes int    `json:"total_early_minutes"`
}

type MonthlyAttendanceReport struct {
	PeriodMonth int                         `json:"period_month"`
	PeriodYear  int                         `json:"period_year"`
	PeriodStart string                      `json:"period_start"`
	PeriodEnd   string                      `json:"period_end"`
	GeneratedAt string                      `json:"generated_at"`
	Employees   []EmployeeAttendanceSummary `json:"employees"`
}
