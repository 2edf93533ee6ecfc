package leave

import "errors"

var (
	ErrLeaveNotFound  = errors.New("leave request not found")
	ErrAlreadyDecided = errors.New("leave request has already been decided")
)
