package leave

import (
	"mime/multipart"

	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	UserID    string `json:"-"`
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`

	// Optional supporting document (sick letter, assignment memo).
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	validTypes := []string{string(LeaveTypeSick), string(LeaveTypeAnnual), string(LeaveTypeOfficial)}
	if !validator.IsInSlice(r.Type, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: sakit, cuti_tahunan, dinas_luar",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name,omitempty"`
	Type          string  `json:"type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        string  `json:"reason"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
	Status        string  `json:"status"`
	ApprovedBy    *string `json:"approved_by,omitempty"`
}

func ToResponse(l LeaveRequest) LeaveResponse {
	var userName string
	if l.UserName != nil {
		userName = *l.UserName
	}

	return LeaveResponse{
		ID:            l.ID,
		UserID:        l.UserID,
		UserName:      userName,
		Type:          string(l.Type),
		StartDate:     l.StartDate,
		EndDate:       l.EndDate,
		Reason:        l.Reason,
		AttachmentURL: l.AttachmentURL,
		Status:        string(l.Status),
		ApprovedBy:    l.ApprovedBy,
	}
}
