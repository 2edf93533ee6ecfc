package leave

import "context"

type LeaveService interface {
	// Submit creates a request; it is always created pending.
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error)

	// Approve and Reject are each allowed exactly once, on a pending
	// request, by an admin.
	Approve(ctx context.Context, id string, approverID string) (LeaveResponse, error)
	Reject(ctx context.Context, id string, approverID string) (LeaveResponse, error)

	GetMyLeaves(ctx context.Context, userID string) ([]LeaveResponse, error)
	ListLeaves(ctx context.Context, status *string) ([]LeaveResponse, error)
	GetStats(ctx context.Context, userID *string) (Stats, error)
}
