package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Manages offices, employees, settings, leave approvals
	RoleEmployee Role = "employee" // Clocks in/out, submits leave requests
)

type User struct {
	ID           string
	NIP          string // unique national employee number, used as login key
	FullName     string
	Role         Role
	Position     string
	OfficeID     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user can approve leave and manage master data.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
