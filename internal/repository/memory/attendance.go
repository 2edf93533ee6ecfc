package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/attendance"
	"github.com/google/uuid"
)

type AttendanceRepository struct {
	mu      sync.Mutex
	records map[string]attendance.Attendance
	byDay   map[string]string // "userID|date" -> record ID

	// Users, when set, resolves the name/NIP join fields the way the SQL
	// JOIN in the PostgreSQL implementation does.
	Users *UserRepository
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		records: make(map[string]attendance.Attendance),
		byDay:   make(map[string]string),
	}
}

func dayKey(userID, date string) string {
	return userID + "|" + date
}

func (r *AttendanceRepository) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(att.UserID, att.Date)
	if _, exists := r.byDay[key]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}

	att.ID = uuid.NewString()
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	r.records[att.ID] = att
	r.byDay[key] = att.ID
	return att, nil
}

func (r *AttendanceRepository) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	att, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (r *AttendanceRepository) GetByUserAndDate(_ context.Context, userID, date string) (*attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byDay[dayKey(userID, date)]
	if !ok {
		return nil, nil
	}
	att := r.records[id]
	return &att, nil
}

func (r *AttendanceRepository) CompleteClockOut(_ context.Context, att attendance.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.records[att.ID]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	if stored.ClockOutTime != nil {
		return attendance.ErrAlreadyClockedOut
	}

	stored.ClockOutTime = att.ClockOutTime
	stored.ClockOutLatitude = att.ClockOutLatitude
	stored.ClockOutLongitude = att.ClockOutLongitude
	stored.ClockOutPhotoURL = att.ClockOutPhotoURL
	stored.DepartureStatus = att.DepartureStatus
	stored.EarlyLeaveMinutes = att.EarlyLeaveMinutes
	stored.UpdatedAt = time.Now()
	r.records[att.ID] = stored
	return nil
}

func matchesStatus(att attendance.Attendance, status string) bool {
	return att.StatusLabel() == status
}

func inRange(date string, start, end *string) bool {
	if start != nil && *start != "" && date < *start {
		return false
	}
	if end != nil && *end != "" && date > *end {
		return false
	}
	return true
}

func (r *AttendanceRepository) ListByUser(_ context.Context, userID string, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []attendance.Attendance
	for _, att := range r.records {
		if att.UserID != userID {
			continue
		}
		if !inRange(att.Date, filter.StartDate, filter.EndDate) {
			continue
		}
		if filter.Status != nil && *filter.Status != "" && !matchesStatus(att, *filter.Status) {
			continue
		}
		matched = append(matched, att)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Date > matched[j].Date })
	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}

func (r *AttendanceRepository) List(_ context.Context, filter attendance.Filter) ([]attendance.Attendance, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []attendance.Attendance
	for _, att := range r.records {
		if filter.UserID != nil && *filter.UserID != "" && att.UserID != *filter.UserID {
			continue
		}
		if filter.Date != nil && *filter.Date != "" && att.Date != *filter.Date {
			continue
		}
		if !inRange(att.Date, filter.StartDate, filter.EndDate) {
			continue
		}
		if filter.Status != nil && *filter.Status != "" && !matchesStatus(att, *filter.Status) {
			continue
		}
		if r.Users != nil {
			if u, err := r.Users.GetByID(context.Background(), att.UserID); err == nil {
				name, nip := u.FullName, u.NIP
				att.UserName = &name
				att.UserNIP = &nip
			}
		}
		matched = append(matched, att)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Date > matched[j].Date })
	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}

func paginate(records []attendance.Attendance, page, limit int) []attendance.Attendance {
	if limit <= 0 {
		return records
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(records) {
		return nil
	}
	end := start + limit
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

func (r *AttendanceRepository) CountByStatus(_ context.Context, userID *string, startDate, endDate *string) (attendance.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stats attendance.Stats
	for _, att := range r.records {
		if userID != nil && *userID != "" && att.UserID != *userID {
			continue
		}
		if !inRange(att.Date, startDate, endDate) {
			continue
		}
		stats.Total++
		switch att.StatusLabel() {
		case string(attendance.ArrivalOnTime):
			stats.OnTime++
		case string(attendance.ArrivalLate):
			stats.Late++
		case string(attendance.DepartureEarly):
			stats.EarlyLeave++
		}
	}
	return stats, nil
}

func (r *AttendanceRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	att, ok := r.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(r.records, id)
	delete(r.byDay, dayKey(att.UserID, att.Date))
	return nil
}
