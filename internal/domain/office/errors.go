package office

import "errors"

var (
	ErrOfficeNotFound = errors.New("office not found")
	ErrOfficeInUse    = errors.New("office still has assigned employees")
)
