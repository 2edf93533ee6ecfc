package leave

import (
	"context"
	"testing"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/leave"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/validator"
	"github.com/dpkp-bogor/presensi-backend-go/internal/repository/memory"
	"github.com/dpkp-bogor/presensi-backend-go/internal/service/filetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeaveService() (leave.LeaveService, *memory.LeaveRepository) {
	repo := memory.NewLeaveRepository()
	return NewLeaveService(repo, filetest.NewFake()), repo
}

func validSubmit(userID string) leave.SubmitLeaveRequest {
	return leave.SubmitLeaveRequest{
		UserID:    userID,
		Type:      string(leave.LeaveTypeSick),
		StartDate: "2026-04-06",
		EndDate:   "2026-04-07",
		Reason:    "demam tinggi",
	}
}

func TestLeaveService_Submit_CreatedPending(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLeaveService()

	resp, err := svc.Submit(ctx, validSubmit("user-1"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(leave.LeaveStatusPending), resp.Status)
	assert.Nil(t, resp.ApprovedBy)
}

func TestLeaveService_Submit_Invalid(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLeaveService()

	req := validSubmit("user-1")
	req.Type = "vacation"
	req.EndDate = "2026-04-05" // before start
	req.Reason = "  "

	_, err := svc.Submit(ctx, req)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "end_date")
	assert.Contains(t, fields, "reason")
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLeaveService()

	created, err := svc.Submit(ctx, validSubmit("user-1"))
	require.NoError(t, err)

	decided, err := svc.Approve(ctx, created.ID, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, string(leave.LeaveStatusApproved), decided.Status)
	require.NotNil(t, decided.ApprovedBy)
	assert.Equal(t, "admin-1", *decided.ApprovedBy)
}

func TestLeaveService_Reject(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLeaveService()

	created, err := svc.Submit(ctx, validSubmit("user-1"))
	require.NoError(t, err)

	decided, err := svc.Reject(ctx, created.ID, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveStatusRejected), decided.Status)
}

func TestLeaveService_Decide_OnlyOnce(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLeaveService()

	created, err := svc.Submit(ctx, validSubmit("user-1"))
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID, "admin-1")
	require.NoError(t, err)

	_, err = svc.Reject(ctx, created.ID, "admin-2")
	assert.ErrorIs(t, err, leave.ErrAlreadyDecided)

	_, err = svc.Approve(ctx, created.ID, "admin-2")
	assert.ErrorIs(t, err, leave.ErrAlreadyDecided)
}

func TestLeaveService_Decide_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLeaveService()

	_, err := svc.Approve(ctx, "missing", "admin-1")
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestLeaveService_ListLeaves_ByStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLeaveService()

	first, err := svc.Submit(ctx, validSubmit("user-1"))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, validSubmit("user-2"))
	require.NoError(t, err)

	_, err = svc.Approve(ctx, first.ID, "admin-1")
	require.NoError(t, err)

	pending := string(leave.LeaveStatusPending)
	pendingList, err := svc.ListLeaves(ctx, &pending)
	require.NoError(t, err)
	require.Len(t, pendingList, 1)
	assert.Equal(t, "user-2", pendingList[0].UserID)

	all, err := svc.ListLeaves(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLeaveService_GetStats(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLeaveService()

	first, err := svc.Submit(ctx, validSubmit("user-1"))
	require.NoError(t, err)
	second, err := svc.Submit(ctx, validSubmit("user-1"))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, validSubmit("user-2"))
	require.NoError(t, err)

	_, err = svc.Approve(ctx, first.ID, "admin-1")
	require.NoError(t, err)
	_, err = svc.Reject(ctx, second.ID, "admin-1")
	require.NoError(t, err)

	userID := "user-1"
	stats, err := svc.GetStats(ctx, &userID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Total)
	assert.EqualValues(t, 1, stats.Approved)
	assert.EqualValues(t, 1, stats.Rejected)
	assert.EqualValues(t, 0, stats.Pending)

	overall, err := svc.GetStats(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, overall.Total)
	assert.EqualValues(t, 1, overall.Pending)
}
