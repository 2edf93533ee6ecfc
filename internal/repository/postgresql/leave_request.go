package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/leave"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	l.id, l.user_id, l.type, l.start_date, l.end_date, l.reason,
	l.attachment_url, l.status, l.approved_by, l.created_at, l.updated_at
`

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			user_id, type, start_date, end_date, reason, attachment_url, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.UserID,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.AttachmentURL,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM leave_requests l WHERE l.id = $1`, leaveColumns)

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.Type, &req.StartDate, &req.EndDate, &req.Reason,
		&req.AttachmentURL, &req.Status, &req.ApprovedBy, &req.CreatedAt, &req.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

func (r *leaveRepository) queryMany(ctx context.Context, query string, args ...any) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.Type, &req.StartDate, &req.EndDate, &req.Reason,
			&req.AttachmentURL, &req.Status, &req.ApprovedBy, &req.CreatedAt, &req.UpdatedAt,
			&req.UserName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// ListByUser implements leave.LeaveRepository.
func (r *leaveRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s, u.full_name
		FROM leave_requests l
		JOIN users u ON l.user_id = u.id
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC
	`, leaveColumns)

	return r.queryMany(ctx, query, userID)
}

// ListByStatus implements leave.LeaveRepository.
func (r *leaveRepository) ListByStatus(ctx context.Context, status leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s, u.full_name
		FROM leave_requests l
		JOIN users u ON l.user_id = u.id
		WHERE l.status = $1
		ORDER BY l.created_at DESC
	`, leaveColumns)

	return r.queryMany(ctx, query, status)
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s, u.full_name
		FROM leave_requests l
		JOIN users u ON l.user_id = u.id
		ORDER BY l.created_at DESC
	`, leaveColumns)

	return r.queryMany(ctx, query)
}

// Decide implements leave.LeaveRepository.
// The update is conditional on the request still being pending, so two admins
// deciding the same request concurrently resolve to exactly one winner. The
// diagnostic read after a no-op update runs in the same transaction.
func (r *leaveRepository) Decide(ctx context.Context, id string, status leave.LeaveStatus, approverID string) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		query := `
			UPDATE leave_requests
			SET status = $2, approved_by = $3, updated_at = NOW()
			WHERE id = $1
			  AND status = 'pending'
		`

		tag, err := q.Exec(ctx, query, id, status, approverID)
		if err != nil {
			return fmt.Errorf("failed to decide leave request: %w", err)
		}
		if tag.RowsAffected() == 0 {
			// Either the request does not exist or it was already decided.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return getErr
			}
			return leave.ErrAlreadyDecided
		}

		return nil
	})
}

// CountByStatus implements leave.LeaveRepository.
func (r *leaveRepository) CountByStatus(ctx context.Context, userID *string) (leave.Stats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected')
		FROM leave_requests
		WHERE ($1::uuid IS NULL OR user_id = $1)
	`

	var stats leave.Stats
	err := q.QueryRow(ctx, query, userID).Scan(
		&stats.Total, &stats.Pending, &stats.Approved, &stats.Rejected,
	)
	if err != nil {
		return leave.Stats{}, fmt.Errorf("failed to count leave requests by status: %w", err)
	}

	return stats, nil
}
