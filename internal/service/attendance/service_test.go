package attendance

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/attendance"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/office"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/user"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/clock"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/location"
	"github.com/dpkp-bogor/presensi-backend-go/internal/repository/memory"
	"github.com/dpkp-bogor/presensi-backend-go/internal/service/filetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memFile struct{ *bytes.Reader }

func (memFile) Close() error { return nil }

func photoRequest(userID string, lat, lon float64) attendance.ClockRequest {
	return attendance.ClockRequest{
		UserID:     userID,
		Latitude:   lat,
		Longitude:  lon,
		File:       memFile{bytes.NewReader([]byte("selfie-bytes"))},
		FileHeader: &multipart.FileHeader{Filename: "selfie.jpg", Size: 1024},
	}
}

type testEnv struct {
	attendanceRepo *memory.AttendanceRepository
	userRepo       *memory.UserRepository
	officeRepo     *memory.OfficeRepository
	settingsRepo   *memory.SettingsRepository
	files          *filetest.Fake
	userID         string
	office         office.Office
}

// newTestEnv seeds one office (08:00-17:00, 100m radius) and one employee.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	env := &testEnv{
		attendanceRepo: memory.NewAttendanceRepository(),
		userRepo:       memory.NewUserRepository(),
		officeRepo:     memory.NewOfficeRepository(),
		settingsRepo:   memory.NewSettingsRepository(),
		files:          filetest.NewFake(),
	}
	env.attendanceRepo.Users = env.userRepo

	off, err := env.officeRepo.Create(ctx, office.Office{
		Name:         "Kantor Pusat",
		Address:      "Jl. Ir. H. Juanda No. 10",
		Latitude:     -6.5971,
		Longitude:    106.7891,
		RadiusMeters: 100,
		WorkStart:    "08:00",
		WorkEnd:      "17:00",
	})
	require.NoError(t, err)
	env.office = off

	u, err := env.userRepo.Create(ctx, user.User{
		NIP:          "199001012015011001",
		FullName:     "Budi Santoso",
		Role:         user.RoleEmployee,
		Position:     "Staf",
		OfficeID:     off.ID,
		PasswordHash: "x",
	})
	require.NoError(t, err)
	env.userID = u.ID

	return env
}

func (env *testEnv) service(clk clock.Clock) attendance.AttendanceService {
	return NewAttendanceService(
		env.attendanceRepo,
		env.userRepo,
		env.officeRepo,
		env.settingsRepo,
		env.files,
		location.NewSimulated(1),
		clk,
	)
}

func TestAttendanceService_ClockIn_OnTime(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.service(clock.At("2026-03-02", "07:55"))

	resp, err := svc.ClockIn(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", resp.Date)
	require.NotNil(t, resp.ClockInTime)
	assert.Equal(t, "07:55", *resp.ClockInTime)
	assert.Equal(t, string(attendance.ArrivalOnTime), resp.ArrivalStatus)
	assert.Equal(t, string(attendance.ArrivalOnTime), resp.Status)
	assert.Zero(t, resp.LateMinutes)
	require.NotNil(t, resp.ClockInPhotoURL)
	assert.Len(t, env.files.Uploads, 1)
}

func TestAttendanceService_ClockIn_ExactlyAtWorkStart(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.service(clock.At("2026-03-02", "08:00"))

	resp, err := svc.ClockIn(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
	require.NoError(t, err)
	assert.Equal(t, string(attendance.ArrivalOnTime), resp.ArrivalStatus)
	assert.Zero(t, resp.LateMinutes)
}

func TestAttendanceService_ClockIn_Late(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.service(clock.At("2026-03-02", "08:01"))

	resp, err := svc.ClockIn(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
	require.NoError(t, err)
	assert.Equal(t, string(attendance.ArrivalLate), resp.ArrivalStatus)
	assert.Equal(t, 1, resp.LateMinutes)
	assert.Equal(t, "late", resp.Status)
}

func TestAttendanceService_ClockIn_OutsideRadius(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.service(clock.At("2026-03-02", "08:00"))

	// ~1.1km north of the office center
	_, err := svc.ClockIn(ctx, photoRequest(env.userID, env.office.Latitude+0.01, env.office.Longitude))
	assert.ErrorIs(t, err, attendance.ErrOutsideOfficeRadius)
}

func TestAttendanceService_ClockIn_Twice(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.service(clock.At("2026-03-02", "08:00"))

	_, err := svc.ClockIn(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestAttendanceService_ClockIn_MockLocationDisabled(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.service(clock.At("2026-03-02", "08:00"))

	req := photoRequest(env.userID, env.office.Latitude, env.office.Longitude)
	req.UseMockLocation = true
	req.MockNearby = true

	_, err := svc.ClockIn(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrMockLocationDisabled)
}

func TestAttendanceService_ClockIn_MockLocationNearby(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	current, err := env.settingsRepo.Get(ctx)
	require.NoError(t, err)
	current.AllowMockLocation = true
	_, err = env.settingsRepo.Update(ctx, current)
	require.NoError(t, err)

	svc := env.service(clock.At("2026-03-02", "08:00"))

	req := photoRequest(env.userID, 0, 0) // coordinates ignored for mock
	req.UseMockLocation = true
	req.MockNearby = true

	resp, err := svc.ClockIn(ctx, req)
	require.NoError(t, err)
	assert.NotNil(t, resp.ClockInLatitude)
}

func TestAttendanceService_ClockIn_MockLocationFar(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	current, err := env.settingsRepo.Get(ctx)
	require.NoError(t, err)
	current.AllowMockLocation = true
	_, err = env.settingsRepo.Update(ctx, current)
	require.NoError(t, err)

	svc := env.service(clock.At("2026-03-02", "08:00"))

	req := photoRequest(env.userID, 0, 0)
	req.UseMockLocation = true
	req.MockNearby = false

	_, err = svc.ClockIn(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrOutsideOfficeRadius)
}

func TestAttendanceService_ClockOut_WithoutClockIn(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.service(clock.At("2026-03-02", "17:00"))

	_, err := svc.ClockOut(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestAttendanceService_ClockOut_EarlyLeave(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.service(clock.At("2026-03-02", "08:00")).
		ClockIn(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
	require.NoError(t, err)

	resp, err := env.service(clock.At("2026-03-02", "16:59")).
		ClockOut(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
	require.NoError(t, err)

	require.NotNil(t, resp.DepartureStatus)
	assert.Equal(t, string(attendance.DepartureEarly), *resp.DepartureStatus)
	assert.Equal(t, 1, resp.EarlyLeaveMinutes)
	// Early departure takes precedence in the derived label.
	assert.Equal(t, "early_leave", resp.Status)
	// The arrival fact is untouched.
	assert.Equal(t, string(attendance.ArrivalOnTime), resp.ArrivalStatus)
}

func TestAttendanceService_ClockOut_AtWorkEnd(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.service(clock.At("2026-03-02", "08:10")).
		ClockIn(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
	require.NoError(t, err)

	resp, err := env.service(clock.At("2026-03-02", "17:00")).
		ClockOut(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
	require.NoError(t, err)

	require.NotNil(t, resp.DepartureStatus)
	assert.Equal(t, string(attendance.DepartureNormal), *resp.DepartureStatus)
	assert.Zero(t, resp.EarlyLeaveMinutes)
	// Normal departure: the label falls back to the arrival fact.
	assert.Equal(t, "late", resp.Status)
}

func TestAttendanceService_ClockOut_Twice(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.service(clock.At("2026-03-02", "08:00")).
		ClockIn(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
	require.NoError(t, err)

	out := env.service(clock.At("2026-03-02", "17:05"))
	_, err = out.ClockOut(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
	require.NoError(t, err)

	_, err = out.ClockOut(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestAttendanceService_CheckGeofence(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.service(clock.At("2026-03-02", "08:00"))

	inside, err := svc.CheckGeofence(ctx, attendance.GeofenceCheckRequest{
		UserID:    env.userID,
		Latitude:  env.office.Latitude,
		Longitude: env.office.Longitude,
	})
	require.NoError(t, err)
	assert.True(t, inside.IsValid)
	assert.Zero(t, inside.DistanceMeters)

	outside, err := svc.CheckGeofence(ctx, attendance.GeofenceCheckRequest{
		UserID:    env.userID,
		Latitude:  env.office.Latitude + 0.01,
		Longitude: env.office.Longitude,
	})
	require.NoError(t, err)
	assert.False(t, outside.IsValid)
	assert.Greater(t, outside.DistanceMeters, 100)
}

func TestAttendanceService_GetMyAttendance_StatusFilter(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	days := []struct {
		date   string
		inAt   string
		outAt  string
		status string
	}{
		{"2026-03-02", "07:50", "17:00", "on_time"},
		{"2026-03-03", "08:20", "17:10", "late"},
		{"2026-03-04", "07:55", "16:30", "early_leave"},
	}
	for _, d := range days {
		_, err := env.service(clock.At(d.date, d.inAt)).
			ClockIn(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
		require.NoError(t, err)
		_, err = env.service(clock.At(d.date, d.outAt)).
			ClockOut(ctx, photoRequest(env.userID, env.office.Latitude, env.office.Longitude))
		require.NoError(t, err)
	}

	svc := env.service(clock.At("2026-03-05", "09:00"))

	all, err := svc.GetMyAttendance(ctx, env.userID, attendance.HistoryFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.TotalCount)
	// Newest first
	assert.Equal(t, "2026-03-04", all.Attendances[0].Date)

	late := "late"
	filtered, err := svc.GetMyAttendance(ctx, env.userID, attendance.HistoryFilter{Status: &late})
	require.NoError(t, err)
	require.Len(t, filtered.Attendances, 1)
	assert.Equal(t, "2026-03-03", filtered.Attendances[0].Date)

	stats, err := svc.GetStats(ctx, &env.userID, nil, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Total)
	assert.EqualValues(t, 1, stats.OnTime)
	assert.EqualValues(t, 1, stats.Late)
	assert.EqualValues(t, 1, stats.EarlyLeave)
}

func TestAttendanceService_GetMyAttendance_InvalidFilter(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := env.service(clock.At("2026-03-02", "08:00"))

	bad := "sideways"
	_, err := svc.GetMyAttendance(ctx, env.userID, attendance.HistoryFilter{Status: &bad})
	assert.Error(t, err)
}
