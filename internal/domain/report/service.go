package report

import "context"

type ReportService interface {
	GenerateMonthlyAttendanceReport(ctx context.Context, req MonthlyAttendanceReportRequest) (MonthlyAttendanceReport, error)

	// ExportAttendanceCSV renders the period's raw attendance rows as CSV,
	// preserving the stored YYYY-MM-DD and HH:MM formats.
	ExportAttendanceCSV(ctx context.Context, req MonthlyAttendanceReportRequest) ([]byte, error)
}
