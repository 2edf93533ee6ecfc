package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/leave"
	"github.com/google/uuid"
)

type LeaveRepository struct {
	mu       sync.Mutex
	requests map[string]leave.LeaveRequest
}

func NewLeaveRepository() *LeaveRepository {
	return &LeaveRepository{requests: make(map[string]leave.LeaveRequest)}
}

func (r *LeaveRepository) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.ID = uuid.NewString()
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	r.requests[req.ID] = req
	return req, nil
}

func (r *LeaveRepository) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveNotFound
	}
	return req, nil
}

func (r *LeaveRepository) list(match func(leave.LeaveRequest) bool) []leave.LeaveRequest {
	var requests []leave.LeaveRequest
	for _, req := range r.requests {
		if match(req) {
			requests = append(requests, req)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests
}

func (r *LeaveRepository) ListByUser(_ context.Context, userID string) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(req leave.LeaveRequest) bool { return req.UserID == userID }), nil
}

func (r *LeaveRepository) ListByStatus(_ context.Context, status leave.LeaveStatus) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(req leave.LeaveRequest) bool { return req.Status == status }), nil
}

func (r *LeaveRepository) List(_ context.Context) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(func(leave.LeaveRequest) bool { return true }), nil
}

func (r *LeaveRepository) Decide(_ context.Context, id string, status leave.LeaveStatus, approverID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return leave.ErrLeaveNotFound
	}
	if req.Status != leave.LeaveStatusPending {
		return leave.ErrAlreadyDecided
	}

	req.Status = status
	req.ApprovedBy = &approverID
	req.UpdatedAt = time.Now()
	r.requests[id] = req
	return nil
}

func (r *LeaveRepository) CountByStatus(_ context.Context, userID *string) (leave.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stats leave.Stats
	for _, req := range r.requests {
		if userID != nil && *userID != "" && req.UserID != *userID {
			continue
		}
		stats.Total++
		switch req.Status {
		case leave.LeaveStatusPending:
			stats.Pending++
		case leave.LeaveStatusApproved:
			stats.Approved++
		case leave.LeaveStatusRejected:
			stats.Rejected++
		}
	}
	return stats, nil
}
