package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/office"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type officeRepository struct {
	db *database.DB
}

func NewOfficeRepository(db *database.DB) office.OfficeRepository {
	return &officeRepository{db: db}
}

// Create implements office.OfficeRepository.
func (r *officeRepository) Create(ctx context.Context, newOffice office.Office) (office.Office, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO offices (
			name, address, latitude, longitude, radius_meters, work_start, work_end
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newOffice.Name,
		newOffice.Address,
		newOffice.Latitude,
		newOffice.Longitude,
		newOffice.RadiusMeters,
		newOffice.WorkStart,
		newOffice.WorkEnd,
	).Scan(&newOffice.ID, &newOffice.CreatedAt, &newOffice.UpdatedAt)

	if err != nil {
		return office.Office{}, fmt.Errorf("failed to create office: %w", err)
	}

	return newOffice, nil
}

// GetByID implements office.OfficeRepository.
func (r *officeRepository) GetByID(ctx context.Context, id string) (office.Office, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, latitude, longitude, radius_meters,
		       work_start, work_end, created_at, updated_at
		FROM offices
		WHERE id = $1
	`

	var o office.Office
	err := q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Name, &o.Address, &o.Latitude, &o.Longitude, &o.RadiusMeters,
		&o.WorkStart, &o.WorkEnd, &o.CreatedAt, &o.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return office.Office{}, office.ErrOfficeNotFound
		}
		return office.Office{}, fmt.Errorf("failed to get office: %w", err)
	}

	return o, nil
}

// List implements office.OfficeRepository.
func (r *officeRepository) List(ctx context.Context) ([]office.Office, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, latitude, longitude, radius_meters,
		       work_start, work_end, created_at, updated_at
		FROM offices
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}
	defer rows.Close()

	var offices []office.Office
	for rows.Next() {
		var o office.Office
		if err := rows.Scan(
			&o.ID, &o.Name, &o.Address, &o.Latitude, &o.Longitude, &o.RadiusMeters,
			&o.WorkStart, &o.WorkEnd, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan office: %w", err)
		}
		offices = append(offices, o)
	}

	return offices, rows.Err()
}

// Update implements office.OfficeRepository.
func (r *officeRepository) Update(ctx context.Context, o office.Office) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE offices
		SET name = $2, address = $3, latitude = $4, longitude = $5,
		    radius_meters = $6, work_start = $7, work_end = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		o.ID, o.Name, o.Address, o.Latitude, o.Longitude,
		o.RadiusMeters, o.WorkStart, o.WorkEnd,
	)
	if err != nil {
		return fmt.Errorf("failed to update office: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return office.ErrOfficeNotFound
	}

	return nil
}

// Delete implements office.OfficeRepository.
func (r *officeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM offices WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23503: users still reference this office
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return office.ErrOfficeInUse
		}
		return fmt.Errorf("failed to delete office: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return office.ErrOfficeNotFound
	}

	return nil
}
