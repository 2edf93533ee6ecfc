package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/attendance"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/leave"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/report"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/user"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/workday"
)

const exportPageSize = 100

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	userRepo       user.UserRepository
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	userRepo user.UserRepository,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		userRepo:       userRepo,
	}
}

func periodBounds(month, year int) (start, end string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	return workday.FormatDate(first), workday.FormatDate(last)
}

// collectPeriod pages through the repository until the whole period is
// loaded; exports and reports must not be truncated by the listing cap.
func (s *ReportServiceImpl) collectPeriod(ctx context.Context, userID *string, start, end string) ([]attendance.Attendance, error) {
	var all []attendance.Attendance
	for page := 1; ; page++ {
		records, total, err := s.attendanceRepo.List(ctx, attendance.Filter{
			UserID:    userID,
			StartDate: &start,
			EndDate:   &end,
			Page:      page,
			Limit:     exportPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list attendances: %w", err)
		}
		all = append(all, records...)
		if int64(len(all)) >= total || len(records) == 0 {
			return all, nil
		}
	}
}

// GenerateMonthlyAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateMonthlyAttendanceReport(ctx context.Context, req report.MonthlyAttendanceReportRequest) (report.MonthlyAttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	start, end := periodBounds(req.Month, req.Year)

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return report.MonthlyAttendanceReport{}, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make(map[string]*report.EmployeeAttendanceSummary)
	var ordered []string
	for _, u := range users {
		if req.UserID != nil && *req.UserID != "" && u.ID != *req.UserID {
			continue
		}
		summaries[u.ID] = &report.EmployeeAttendanceSummary{
			UserID:   u.ID,
			NIP:      u.NIP,
			FullName: u.FullName,
		}
		ordered = append(ordered, u.ID)
	}

	records, err := s.collectPeriod(ctx, req.UserID, start, end)
	if err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	for _, att := range records {
		summary, ok := summaries[att.UserID]
		if !ok {
			continue
		}
		summary.DaysPresent++
		switch att.StatusLabel() {
		case string(attendance.ArrivalOnTime):
			summary.DaysOnTime++
		case string(attendance.ArrivalLate):
			summary.DaysLate++
		case string(attendance.DepartureEarly):
			summary.DaysEarlyLeave++
		}
		summary.TotalLateMinutes += att.LateMinutes
		summary.TotalEarlyMinutes += att.EarlyLeaveMinutes
	}

	approved, err := s.leaveRepo.ListByStatus(ctx, leave.LeaveStatusApproved)
	if err != nil {
		return report.MonthlyAttendanceReport{}, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	for _, l := range approved {
		summary, ok := summaries[l.UserID]
		if !ok {
			continue
		}
		summary.DaysOnLeave += overlapDays(l.StartDate, l.EndDate, start, end)
	}

	employees := make([]report.EmployeeAttendanceSummary, 0, len(ordered))
	for _, id := range ordered {
		employees = append(employees, *summaries[id])
	}

	return report.MonthlyAttendanceReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: start,
		PeriodEnd:   end,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Employees:   employees,
	}, nil
}

// ExportAttendanceCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendanceCSV(ctx context.Context, req report.MonthlyAttendanceReportRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, end := periodBounds(req.Month, req.Year)

	records, err := s.collectPeriod(ctx, req.UserID, start, end)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "nip", "full_name", "clock_in", "clock_out", "status", "late_minutes", "early_leave_minutes"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, att := range records {
		row := []string{
			att.Date,
			strDeref(att.UserNIP),
			strDeref(att.UserName),
			strDeref(att.ClockInTime),
			strDeref(att.ClockOutTime),
			att.StatusLabel(),
			strconv.Itoa(att.LateMinutes),
			strconv.Itoa(att.EarlyLeaveMinutes),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// overlapDays counts the calendar days the leave range shares with the
// report period. Dates are inclusive on both ends.
func overlapDays(leaveStart, leaveEnd, periodStart, periodEnd string) int {
	start := maxDate(leaveStart, periodStart)
	end := minDate(leaveEnd, periodEnd)
	if end < start {
		return 0
	}

	from, err1 := time.Parse(workday.DateLayout, start)
	to, err2 := time.Parse(workday.DateLayout, end)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

func maxDate(a, b string) string {
	if a > b {
		return a
	}
	return b
}

func minDate(a, b string) string {
	if a < b {
		return a
	}
	return b
}
