package leave

import "time"

type LeaveType string

const (
	LeaveTypeSick     LeaveType = "sakit"
	LeaveTypeAnnual   LeaveType = "cuti_tahunan"
	LeaveTypeOfficial LeaveType = "dinas_luar"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveRequest is created pending by an employee and decided exactly once by
// an admin; it is immutable afterwards.
type LeaveRequest struct {
	ID            string
	UserID        string
	Type          LeaveType
	StartDate     string // YYYY-MM-DD
	EndDate       string // YYYY-MM-DD, >= StartDate
	Reason        string
	AttachmentURL *string
	Status        LeaveStatus
	ApprovedBy    *string // admin user ID, set with the decision
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Join fields for admin listings
	UserName *string
}
