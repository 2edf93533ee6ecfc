package leave

import (
	"context"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/leave"
	"github.com/dpkp-bogor/presensi-backend-go/internal/service/file"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	fileService file.FileService
}

func NewLeaveService(leaveRepo leave.LeaveRepository, fileService file.FileService) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepo,
		fileService:     fileService,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	var attachmentURL *string
	if req.File != nil && req.FileHeader != nil {
		url, err := s.fileService.UploadLeaveAttachment(ctx, req.UserID, req.File, req.FileHeader.Filename)
		if err != nil {
			return leave.LeaveResponse{}, err
		}
		attachmentURL = &url
	}

	created, err := s.LeaveRepository.Create(ctx, leave.LeaveRequest{
		UserID:        req.UserID,
		Type:          leave.LeaveType(req.Type),
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Reason:        req.Reason,
		AttachmentURL: attachmentURL,
		Status:        leave.LeaveStatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

func (s *LeaveServiceImpl) decide(ctx context.Context, id string, status leave.LeaveStatus, approverID string) (leave.LeaveResponse, error) {
	if err := s.LeaveRepository.Decide(ctx, id, status, approverID); err != nil {
		return leave.LeaveResponse{}, err
	}

	decided, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(decided), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string, approverID string) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, leave.LeaveStatusApproved, approverID)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id string, approverID string) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, leave.LeaveStatusRejected, approverID)
}

// GetMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyLeaves(ctx context.Context, userID string) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, status *string) ([]leave.LeaveResponse, error) {
	var (
		requests []leave.LeaveRequest
		err      error
	)
	if status != nil && *status != "" {
		requests, err = s.LeaveRepository.ListByStatus(ctx, leave.LeaveStatus(*status))
	} else {
		requests, err = s.LeaveRepository.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// GetStats implements leave.LeaveService.
func (s *LeaveServiceImpl) GetStats(ctx context.Context, userID *string) (leave.Stats, error) {
	return s.LeaveRepository.CountByStatus(ctx, userID)
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToResponse(req))
	}
	return responses
}
