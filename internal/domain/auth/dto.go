package auth

import (
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/user"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	NIP      string `json:"nip"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NIP) {
		errs = append(errs, validator.ValidationError{
			Field:   "nip",
			Message: "nip is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken           string            `json:"access_token"`
	AccessTokenExpiresAt  int64             `json:"access_token_expires_at"`
	RefreshToken          string            `json:"-"` // delivered as an HttpOnly cookie
	RefreshTokenExpiresAt int64             `json:"-"`
	User                  user.UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresAt int64  `json:"access_token_expires_at"`
}
