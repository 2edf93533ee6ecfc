package attendance

import (
	"context"
	"fmt"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/attendance"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/office"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/settings"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/user"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/clock"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/geo"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/location"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/workday"
	"github.com/dpkp-bogor/presensi-backend-go/internal/service/file"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	user.UserRepository
	office.OfficeRepository
	settings.SettingsRepository
	fileService file.FileService
	provider    location.Provider
	clock       clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	officeRepo office.OfficeRepository,
	settingsRepo settings.SettingsRepository,
	fileService file.FileService,
	provider location.Provider,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		UserRepository:       userRepo,
		OfficeRepository:     officeRepo,
		SettingsRepository:   settingsRepo,
		fileService:          fileService,
		provider:             provider,
		clock:                clk,
	}
}

// resolveOffice loads the office assigned to the user.
func (a *AttendanceServiceImpl) resolveOffice(ctx context.Context, userID string) (office.Office, error) {
	u, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return office.Office{}, err
	}
	return a.OfficeRepository.GetByID(ctx, u.OfficeID)
}

// resolveLocation returns the position to validate. A simulated position is
// only honored when the allow_mock_location setting is enabled; otherwise the
// request coordinates are taken as reported by the device.
func (a *AttendanceServiceImpl) resolveLocation(ctx context.Context, req attendance.ClockRequest, center geo.Point) (geo.Point, error) {
	if !req.UseMockLocation {
		return geo.Point{Latitude: req.Latitude, Longitude: req.Longitude}, nil
	}

	cfg, err := a.SettingsRepository.Get(ctx)
	if err != nil {
		return geo.Point{}, fmt.Errorf("failed to get settings: %w", err)
	}
	if !cfg.AllowMockLocation {
		return geo.Point{}, attendance.ErrMockLocationDisabled
	}

	return a.provider.Acquire(ctx, center, req.MockNearby)
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	off, err := a.resolveOffice(ctx, req.UserID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	pos, err := a.resolveLocation(ctx, req, off.Center())
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	fence := geo.CheckGeofence(pos, off.Center(), off.RadiusMeters)
	if !fence.IsValid {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideOfficeRadius
	}

	now := a.clock.Now()
	date := workday.FormatDate(now)
	clockTime := workday.FormatTime(now)

	existing, err := a.AttendanceRepository.GetByUserAndDate(ctx, req.UserID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	arrival, err := workday.ClassifyClockIn(clockTime, off.WorkStart)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to classify clock in: %w", err)
	}

	photoURL, err := a.fileService.UploadAttendancePhoto(ctx, req.UserID, date, req.File, req.FileHeader.Filename, "in")
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	arrivalStatus := attendance.ArrivalOnTime
	if arrival.Late {
		arrivalStatus = attendance.ArrivalLate
	}

	att := attendance.Attendance{
		UserID:           req.UserID,
		Date:             date,
		ClockInTime:      &clockTime,
		ClockInLatitude:  &pos.Latitude,
		ClockInLongitude: &pos.Longitude,
		ClockInPhotoURL:  &photoURL,
		ArrivalStatus:    arrivalStatus,
		LateMinutes:      arrival.LateMinutes,
	}

	created, err := a.AttendanceRepository.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	off, err := a.resolveOffice(ctx, req.UserID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	pos, err := a.resolveLocation(ctx, req, off.Center())
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	fence := geo.CheckGeofence(pos, off.Center(), off.RadiusMeters)
	if !fence.IsValid {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideOfficeRadius
	}

	now := a.clock.Now()
	date := workday.FormatDate(now)
	clockTime := workday.FormatTime(now)

	existing, err := a.AttendanceRepository.GetByUserAndDate(ctx, req.UserID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if existing.ClockOutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	departure, err := workday.ClassifyClockOut(clockTime, off.WorkEnd)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to classify clock out: %w", err)
	}

	photoURL, err := a.fileService.UploadAttendancePhoto(ctx, req.UserID, date, req.File, req.FileHeader.Filename, "out")
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	departureStatus := attendance.DepartureNormal
	if departure.Early {
		departureStatus = attendance.DepartureEarly
	}

	existing.ClockOutTime = &clockTime
	existing.ClockOutLatitude = &pos.Latitude
	existing.ClockOutLongitude = &pos.Longitude
	existing.ClockOutPhotoURL = &photoURL
	existing.DepartureStatus = &departureStatus
	existing.EarlyLeaveMinutes = departure.EarlyMinutes

	if err := a.AttendanceRepository.CompleteClockOut(ctx, *existing); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(*existing), nil
}

// CheckGeofence implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckGeofence(ctx context.Context, req attendance.GeofenceCheckRequest) (geo.GeofenceResult, error) {
	if err := req.Validate(); err != nil {
		return geo.GeofenceResult{}, err
	}

	off, err := a.resolveOffice(ctx, req.UserID)
	if err != nil {
		return geo.GeofenceResult{}, err
	}

	pos := geo.Point{Latitude: req.Latitude, Longitude: req.Longitude}
	return geo.CheckGeofence(pos, off.Center(), off.RadiusMeters), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, userID string, filter attendance.HistoryFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.ListByUser(ctx, userID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return buildListResponse(records, total, filter.Page, filter.Limit), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.Filter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return buildListResponse(records, total, filter.Page, filter.Limit), nil
}

// GetStats implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetStats(ctx context.Context, userID *string, startDate, endDate *string) (attendance.Stats, error) {
	return a.AttendanceRepository.CountByStatus(ctx, userID, startDate, endDate)
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	return a.AttendanceRepository.Delete(ctx, id)
}

func buildListResponse(records []attendance.Attendance, total int64, page, limit int) attendance.ListAttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, attendance.ToResponse(att))
	}
	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		Attendances: responses,
	}
}
