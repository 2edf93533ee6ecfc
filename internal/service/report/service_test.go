package report

import (
	"context"
	"strings"
	"testing"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/attendance"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/leave"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/report"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/user"
	"github.com/dpkp-bogor/presensi-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportEnv struct {
	svc            report.ReportService
	attendanceRepo *memory.AttendanceRepository
	leaveRepo      *memory.LeaveRepository
	userRepo       *memory.UserRepository
	budiID         string
	sitiID         string
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func depPtr(d attendance.DepartureStatus) *attendance.DepartureStatus { return &d }

func seedRecord(t *testing.T, repo *memory.AttendanceRepository, userID, date, in string, arrival attendance.ArrivalStatus, lateMins int, out *string, departure *attendance.DepartureStatus, earlyMins int) {
	t.Helper()
	ctx := context.Background()

	created, err := repo.Create(ctx, attendance.Attendance{
		UserID:           userID,
		Date:             date,
		ClockInTime:      strPtr(in),
		ClockInLatitude:  f64Ptr(-6.5971),
		ClockInLongitude: f64Ptr(106.7891),
		ClockInPhotoURL:  strPtr("attendance/" + date + "/" + userID + "-in.jpg"),
		ArrivalStatus:    arrival,
		LateMinutes:      lateMins,
	})
	require.NoError(t, err)

	if out != nil {
		created.ClockOutTime = out
		created.ClockOutLatitude = f64Ptr(-6.5971)
		created.ClockOutLongitude = f64Ptr(106.7891)
		created.DepartureStatus = departure
		created.EarlyLeaveMinutes = earlyMins
		require.NoError(t, repo.CompleteClockOut(ctx, created))
	}
}

func newReportEnv(t *testing.T) *reportEnv {
	t.Helper()
	ctx := context.Background()

	env := &reportEnv{
		attendanceRepo: memory.NewAttendanceRepository(),
		leaveRepo:      memory.NewLeaveRepository(),
		userRepo:       memory.NewUserRepository(),
	}
	env.attendanceRepo.Users = env.userRepo
	env.svc = NewReportService(env.attendanceRepo, env.leaveRepo, env.userRepo)

	budi, err := env.userRepo.Create(ctx, user.User{
		NIP: "199001012015011001", FullName: "Budi Santoso",
		Role: user.RoleEmployee, OfficeID: "office-1",
	})
	require.NoError(t, err)
	env.budiID = budi.ID

	siti, err := env.userRepo.Create(ctx, user.User{
		NIP: "199202022016022002", FullName: "Siti Aminah",
		Role: user.RoleEmployee, OfficeID: "office-1",
	})
	require.NoError(t, err)
	env.sitiID = siti.ID

	// Budi: on time, late (5m), early leave (30m)
	seedRecord(t, env.attendanceRepo, env.budiID, "2026-03-02", "07:55",
		attendance.ArrivalOnTime, 0, strPtr("17:00"), depPtr(attendance.DepartureNormal), 0)
	seedRecord(t, env.attendanceRepo, env.budiID, "2026-03-03", "08:05",
		attendance.ArrivalLate, 5, strPtr("17:05"), depPtr(attendance.DepartureNormal), 0)
	seedRecord(t, env.attendanceRepo, env.budiID, "2026-03-04", "07:50",
		attendance.ArrivalOnTime, 0, strPtr("16:30"), depPtr(attendance.DepartureEarly), 30)

	// Siti: a single open day (no clock-out yet)
	seedRecord(t, env.attendanceRepo, env.sitiID, "2026-03-02", "08:00",
		attendance.ArrivalOnTime, 0, nil, nil, 0)

	// Budi: approved leave spanning the end of February into March (2 days
	// inside the period), plus one pending request that must not count.
	approved, err := env.leaveRepo.Create(ctx, leave.LeaveRequest{
		UserID: env.budiID, Type: leave.LeaveTypeSick,
		StartDate: "2026-02-27", EndDate: "2026-03-02",
		Reason: "demam", Status: leave.LeaveStatusPending,
	})
	require.NoError(t, err)
	require.NoError(t, env.leaveRepo.Decide(ctx, approved.ID, leave.LeaveStatusApproved, "admin-1"))

	_, err = env.leaveRepo.Create(ctx, leave.LeaveRequest{
		UserID: env.budiID, Type: leave.LeaveTypeAnnual,
		StartDate: "2026-03-10", EndDate: "2026-03-12",
		Reason: "cuti", Status: leave.LeaveStatusPending,
	})
	require.NoError(t, err)

	return env
}

func TestReportService_GenerateMonthlyAttendanceReport(t *testing.T) {
	ctx := context.Background()
	env := newReportEnv(t)

	rep, err := env.svc.GenerateMonthlyAttendanceReport(ctx, report.MonthlyAttendanceReportRequest{
		Month: 3, Year: 2026,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-01", rep.PeriodStart)
	assert.Equal(t, "2026-03-31", rep.PeriodEnd)
	require.Len(t, rep.Employees, 2)

	byID := map[string]report.EmployeeAttendanceSummary{}
	for _, e := range rep.Employees {
		byID[e.UserID] = e
	}

	budi := byID[env.budiID]
	assert.Equal(t, 3, budi.DaysPresent)
	assert.Equal(t, 1, budi.DaysOnTime)
	assert.Equal(t, 1, budi.DaysLate)
	assert.Equal(t, 1, budi.DaysEarlyLeave)
	assert.Equal(t, 5, budi.TotalLateMinutes)
	assert.Equal(t, 30, budi.TotalEarlyMinutes)
	// Only 2026-03-01 and 2026-03-02 of the approved leave fall inside March.
	assert.Equal(t, 2, budi.DaysOnLeave)

	siti := byID[env.sitiID]
	assert.Equal(t, 1, siti.DaysPresent)
	assert.Equal(t, 1, siti.DaysOnTime)
	assert.Equal(t, 0, siti.DaysOnLeave)
}

func TestReportService_GenerateMonthlyAttendanceReport_SingleUser(t *testing.T) {
	ctx := context.Background()
	env := newReportEnv(t)

	rep, err := env.svc.GenerateMonthlyAttendanceReport(ctx, report.MonthlyAttendanceReportRequest{
		Month: 3, Year: 2026, UserID: &env.sitiID,
	})
	require.NoError(t, err)

	require.Len(t, rep.Employees, 1)
	assert.Equal(t, env.sitiID, rep.Employees[0].UserID)
}

func TestReportService_GenerateMonthlyAttendanceReport_InvalidPeriod(t *testing.T) {
	ctx := context.Background()
	env := newReportEnv(t)

	_, err := env.svc.GenerateMonthlyAttendanceReport(ctx, report.MonthlyAttendanceReportRequest{
		Month: 13, Year: 2026,
	})
	assert.Error(t, err)
}

func TestReportService_ExportAttendanceCSV(t *testing.T) {
	ctx := context.Background()
	env := newReportEnv(t)

	data, err := env.svc.ExportAttendanceCSV(ctx, report.MonthlyAttendanceReportRequest{
		Month: 3, Year: 2026,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header plus 4 rows
	require.Len(t, lines, 5)
	assert.Equal(t, "date,nip,full_name,clock_in,clock_out,status,late_minutes,early_leave_minutes", lines[0])

	// Stored formats survive the export untouched.
	assert.Contains(t, string(data), "2026-03-04,199001012015011001,Budi Santoso,07:50,16:30,early_leave,0,30")
	// Open day exports with an empty clock-out.
	assert.Contains(t, string(data), "2026-03-02,199202022016022002,Siti Aminah,08:00,,on_time,0,0")
}
