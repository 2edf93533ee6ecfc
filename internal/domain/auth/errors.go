package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid NIP or password")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)
