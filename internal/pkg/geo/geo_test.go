package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_IdenticalPoints(t *testing.T) {
	points := []Point{
		{0, 0},
		{-6.2, 106.81667},
		{90, 0},
		{-90, 180},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, DistanceMeters(p, p))
	}
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	a := Point{-6.2, 106.81667}
	b := Point{-6.18882, 106.83882}
	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// ~0.0018 degrees of latitude is roughly 200m.
	a := Point{-6.2, 106.81667}
	b := Point{-6.2018, 106.81667}
	d := DistanceMeters(a, b)
	assert.InDelta(t, 200, d, 5)
}

func TestDistanceMeters_Antipodal(t *testing.T) {
	// Must not produce NaN; roughly half the Earth's circumference.
	a := Point{0, 0}
	b := Point{0, 180}
	d := DistanceMeters(a, b)
	assert.False(t, d != d, "distance must not be NaN")
	assert.InDelta(t, 20015086, d, 50000)
}

func TestCheckGeofence(t *testing.T) {
	center := Point{-6.2, 106.81667}

	cases := []struct {
		name  string
		user  Point
		valid bool
	}{
		{"exact center", center, true},
		{"200m away", Point{-6.2018, 106.81667}, false},
		{"within 100m", Point{-6.2005, 106.81667}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := CheckGeofence(c.user, center, 100)
			assert.Equal(t, c.valid, res.IsValid)
			assert.NotEmpty(t, res.Message)
		})
	}
}

func TestCheckGeofence_ExactCenterDistanceZero(t *testing.T) {
	center := Point{-6.2, 106.81667}
	res := CheckGeofence(center, center, 100)
	assert.True(t, res.IsValid)
	assert.Equal(t, 0, res.DistanceMeters)
}

func TestCheckGeofence_InclusiveBoundary(t *testing.T) {
	center := Point{-6.2, 106.81667}
	user := Point{-6.2009, 106.81667}

	// Radius equal to the rounded distance is still valid.
	distance := CheckGeofence(user, center, 1000).DistanceMeters
	res := CheckGeofence(user, center, distance)
	assert.True(t, res.IsValid)
}
