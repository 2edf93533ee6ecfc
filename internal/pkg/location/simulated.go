package location

import (
	"context"
	"math/rand"
	"sync"

	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/geo"
)

// jitterDegrees spreads nearby points over roughly +-15m per axis, well
// inside the smallest seeded office radius.
const jitterDegrees = 0.0003

// farOffsetDegrees places far points ~1.1km from the center.
const farOffsetDegrees = 0.01

// Simulated fabricates positions around an office center. Nearby points get a
// small random jitter; far points are a fixed offset so geofence rejection is
// deterministic.
type Simulated struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulated(seed int64) *Simulated {
	return &Simulated{rng: rand.New(rand.NewSource(seed))}
}

func (s *Simulated) Acquire(_ context.Context, center geo.Point, nearby bool) (geo.Point, error) {
	if !nearby {
		return geo.Point{
			Latitude:  center.Latitude + farOffsetDegrees,
			Longitude: center.Longitude + farOffsetDegrees,
		}, nil
	}

	s.mu.Lock()
	offsetLat := (s.rng.Float64() - 0.5) * jitterDegrees
	offsetLon := (s.rng.Float64() - 0.5) * jitterDegrees
	s.mu.Unlock()

	return geo.Point{
		Latitude:  center.Latitude + offsetLat,
		Longitude: center.Longitude + offsetLon,
	}, nil
}
