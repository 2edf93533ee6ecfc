package http

import (
	"context"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// userIDFromContext extracts the authenticated user's ID from the verified
// JWT claims. Claims are resolved here so services stay free of transport
// concerns.
func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}
