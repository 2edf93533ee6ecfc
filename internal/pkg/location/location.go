// Package location is the boundary between the attendance core and platform
// positioning. A Provider either wraps a real position source or simulates
// one; which implementation is wired is a configuration concern, never a
// branch inside business logic.
package location

import (
	"context"
	"errors"

	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/geo"
)

var (
	ErrPermissionDenied    = errors.New("location access was denied")
	ErrPositionUnavailable = errors.New("location information is unavailable")
	ErrTimeout             = errors.New("location request timed out")
)

// Provider acquires a position relative to an office center. The nearby flag
// only matters to simulated implementations.
type Provider interface {
	Acquire(ctx context.Context, center geo.Point, nearby bool) (geo.Point, error)
}
