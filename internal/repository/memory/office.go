// Package memory provides in-memory repository implementations backed by
// maps. They honor the same invariants as the PostgreSQL repositories
// (uniqueness, conditional updates) and back the service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/office"
	"github.com/google/uuid"
)

type OfficeRepository struct {
	mu      sync.Mutex
	offices map[string]office.Office
}

func NewOfficeRepository() *OfficeRepository {
	return &OfficeRepository{offices: make(map[string]office.Office)}
}

func (r *OfficeRepository) Create(_ context.Context, o office.Office) (office.Office, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = uuid.NewString()
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	r.offices[o.ID] = o
	return o, nil
}

func (r *OfficeRepository) GetByID(_ context.Context, id string) (office.Office, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.offices[id]
	if !ok {
		return office.Office{}, office.ErrOfficeNotFound
	}
	return o, nil
}

func (r *OfficeRepository) List(_ context.Context) ([]office.Office, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	offices := make([]office.Office, 0, len(r.offices))
	for _, o := range r.offices {
		offices = append(offices, o)
	}
	sort.Slice(offices, func(i, j int) bool { return offices[i].Name < offices[j].Name })
	return offices, nil
}

func (r *OfficeRepository) Update(_ context.Context, o office.Office) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.offices[o.ID]
	if !ok {
		return office.ErrOfficeNotFound
	}
	o.CreatedAt = stored.CreatedAt
	o.UpdatedAt = time.Now()
	r.offices[o.ID] = o
	return nil
}

func (r *OfficeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.offices[id]; !ok {
		return office.ErrOfficeNotFound
	}
	delete(r.offices, id)
	return nil
}
