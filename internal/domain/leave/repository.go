package leave

import "context"

// Stats aggregates leave request counts by status.
type Stats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	ListByStatus(ctx context.Context, status LeaveStatus) ([]LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)

	// Decide sets status and approver atomically, conditional on the request
	// still being pending. A decided request must fail with ErrAlreadyDecided.
	Decide(ctx context.Context, id string, status LeaveStatus, approverID string) error

	// CountByStatus aggregates counts; userID nil means all users.
	CountByStatus(ctx context.Context, userID *string) (Stats, error)
}
