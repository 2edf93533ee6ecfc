package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrNIPExists              = errors.New("NIP is already registered")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
