package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/attendance"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.user_id, a.date,
	a.clock_in_time, a.clock_in_latitude, a.clock_in_longitude, a.clock_in_photo_url,
	a.clock_out_time, a.clock_out_latitude, a.clock_out_longitude, a.clock_out_photo_url,
	a.arrival_status, a.departure_status, a.late_minutes, a.early_leave_minutes,
	a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.UserID, &att.Date,
		&att.ClockInTime, &att.ClockInLatitude, &att.ClockInLongitude, &att.ClockInPhotoURL,
		&att.ClockOutTime, &att.ClockOutLatitude, &att.ClockOutLongitude, &att.ClockOutPhotoURL,
		&att.ArrivalStatus, &att.DepartureStatus, &att.LateMinutes, &att.EarlyLeaveMinutes,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
// The attendances table carries UNIQUE (user_id, date); a duplicate insert is
// reported as ErrAlreadyClockedIn so a racing second clock-in loses cleanly.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			user_id, date, clock_in_time, clock_in_latitude, clock_in_longitude,
			clock_in_photo_url, arrival_status, late_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.UserID,
		att.Date,
		att.ClockInTime,
		att.ClockInLatitude,
		att.ClockInLongitude,
		att.ClockInPhotoURL,
		att.ArrivalStatus,
		att.LateMinutes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM attendances a WHERE a.id = $1`, attendanceColumns)

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendances a
		WHERE a.user_id = $1 AND a.date = $2
		LIMIT 1
	`, attendanceColumns)

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for this day yet
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

// CompleteClockOut implements attendance.AttendanceRepository.
// The update is conditional on the clock-out half still being unset, so two
// racing clock-outs resolve to exactly one winner.
func (r *attendanceRepository) CompleteClockOut(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out_time = $2, clock_out_latitude = $3, clock_out_longitude = $4,
		    clock_out_photo_url = $5, departure_status = $6, early_leave_minutes = $7,
		    updated_at = NOW()
		WHERE id = $1
		  AND clock_out_time IS NULL
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.ClockOutTime,
		att.ClockOutLatitude,
		att.ClockOutLongitude,
		att.ClockOutPhotoURL,
		att.DepartureStatus,
		att.EarlyLeaveMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to complete clock out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyClockedOut
	}

	return nil
}

// statusCondition translates a derived status label filter into SQL over the
// two stored facts.
func statusCondition(status string) string {
	switch status {
	case string(attendance.DepartureEarly):
		return "a.departure_status = 'early_leave'"
	case string(attendance.ArrivalLate):
		return "a.arrival_status = 'late' AND (a.departure_status IS NULL OR a.departure_status = 'normal')"
	default:
		return "a.arrival_status = 'on_time' AND (a.departure_status IS NULL OR a.departure_status = 'normal')"
	}
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByUser(ctx context.Context, userID string, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"a.user_id = $1"}
	args := []any{userID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, statusCondition(*filter.Status))
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM attendances a WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s FROM attendances a
		WHERE %s
		ORDER BY a.date DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, rows.Err()
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("a.user_id = $%d", argIdx))
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", argIdx))
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, statusCondition(*filter.Status))
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM attendances a WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s, u.full_name, u.nip
		FROM attendances a
		JOIN users u ON a.user_id = u.id
		WHERE %s
		ORDER BY a.date DESC, u.full_name ASC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.UserID, &att.Date,
			&att.ClockInTime, &att.ClockInLatitude, &att.ClockInLongitude, &att.ClockInPhotoURL,
			&att.ClockOutTime, &att.ClockOutLatitude, &att.ClockOutLongitude, &att.ClockOutPhotoURL,
			&att.ArrivalStatus, &att.DepartureStatus, &att.LateMinutes, &att.EarlyLeaveMinutes,
			&att.CreatedAt, &att.UpdatedAt,
			&att.UserName, &att.UserNIP,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, rows.Err()
}

// CountByStatus implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountByStatus(ctx context.Context, userID *string, startDate, endDate *string) (attendance.Stats, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if userID != nil && *userID != "" {
		conditions = append(conditions, fmt.Sprintf("a.user_id = $%d", argIdx))
		args = append(args, *userID)
		argIdx++
	}
	if startDate != nil && *startDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *startDate)
		argIdx++
	}
	if endDate != nil && *endDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *endDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE %s),
			COUNT(*) FILTER (WHERE %s),
			COUNT(*) FILTER (WHERE %s)
		FROM attendances a
		WHERE %s
	`,
		statusCondition(string(attendance.ArrivalOnTime)),
		statusCondition(string(attendance.ArrivalLate)),
		statusCondition(string(attendance.DepartureEarly)),
		strings.Join(conditions, " AND "),
	)

	var stats attendance.Stats
	err := q.QueryRow(ctx, query, args...).Scan(
		&stats.Total, &stats.OnTime, &stats.Late, &stats.EarlyLeave,
	)
	if err != nil {
		return attendance.Stats{}, fmt.Errorf("failed to count attendances by status: %w", err)
	}

	return stats, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
