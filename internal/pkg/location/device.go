package location

import (
	"context"
	"errors"
	"time"

	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/geo"
)

// DefaultAcquireTimeout bounds how long a position request may block waiting
// for a permission grant or hardware response.
const DefaultAcquireTimeout = 10 * time.Second

// PositionSource is implemented by whatever actually talks to the positioning
// hardware or the client device.
type PositionSource interface {
	CurrentPosition(ctx context.Context) (geo.Point, error)
}

// Device wraps a real position source with a timeout. Acquisition is
// one-shot: a failure is surfaced to the caller, never retried here.
type Device struct {
	source  PositionSource
	timeout time.Duration
}

func NewDevice(source PositionSource, timeout time.Duration) *Device {
	if timeout <= 0 {
		timeout = DefaultAcquireTimeout
	}
	return &Device{source: source, timeout: timeout}
}

func (d *Device) Acquire(ctx context.Context, _ geo.Point, _ bool) (geo.Point, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	point, err := d.source.CurrentPosition(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return geo.Point{}, ErrTimeout
		}
		return geo.Point{}, err
	}
	return point, nil
}
