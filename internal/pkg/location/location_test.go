package location

import (
	"context"
	"testing"
	"time"

	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var officeCenter = geo.Point{Latitude: -6.2, Longitude: 106.816666}

func TestSimulated_NearbyWithinRadius(t *testing.T) {
	provider := NewSimulated(42)

	for i := 0; i < 50; i++ {
		point, err := provider.Acquire(context.Background(), officeCenter, true)
		require.NoError(t, err)

		res := geo.CheckGeofence(point, officeCenter, 100)
		assert.True(t, res.IsValid, "jittered point %d must stay inside 100m: %dm", i, res.DistanceMeters)
	}
}

func TestSimulated_FarOutsideRadius(t *testing.T) {
	provider := NewSimulated(42)

	point, err := provider.Acquire(context.Background(), officeCenter, false)
	require.NoError(t, err)

	res := geo.CheckGeofence(point, officeCenter, 100)
	assert.False(t, res.IsValid)
	assert.Greater(t, res.DistanceMeters, 1000)
}

type stubSource struct {
	point geo.Point
	err   error
	delay time.Duration
}

func (s stubSource) CurrentPosition(ctx context.Context) (geo.Point, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return geo.Point{}, ctx.Err()
		}
	}
	return s.point, s.err
}

func TestDevice_ReturnsSourcePosition(t *testing.T) {
	device := NewDevice(stubSource{point: officeCenter}, time.Second)

	point, err := device.Acquire(context.Background(), geo.Point{}, false)
	require.NoError(t, err)
	assert.Equal(t, officeCenter, point)
}

func TestDevice_Timeout(t *testing.T) {
	device := NewDevice(stubSource{point: officeCenter, delay: time.Second}, 10*time.Millisecond)

	_, err := device.Acquire(context.Background(), geo.Point{}, false)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestDevice_PermissionDenied(t *testing.T) {
	device := NewDevice(stubSource{err: ErrPermissionDenied}, time.Second)

	_, err := device.Acquire(context.Background(), geo.Point{}, false)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
