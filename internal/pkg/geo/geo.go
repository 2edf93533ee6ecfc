package geo

import (
	"fmt"
	"math"
)

const earthRadiusMeters = 6371000

// Point is a WGS84 coordinate pair in degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceMeters returns the great-circle distance between two points using
// the Haversine formula.
func DistanceMeters(a, b Point) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180.0)

	lat1Rad := a.Latitude * (math.Pi / 180.0)
	lat2Rad := b.Latitude * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	// Floating-point overshoot near antipodal points can push h slightly
	// outside [0,1], which would make Sqrt(1-h) NaN.
	if h < 0 {
		h = 0
	} else if h > 1 {
		h = 1
	}

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// GeofenceResult is the single result shape for a geofence check, valid or not.
type GeofenceResult struct {
	IsValid        bool   `json:"is_valid"`
	DistanceMeters int    `json:"distance_meters"`
	Message        string `json:"message"`
}

// CheckGeofence reports whether user is within radiusMeters of center.
// The boundary is inclusive. Pure: safe to call repeatedly on refresh.
func CheckGeofence(user Point, center Point, radiusMeters int) GeofenceResult {
	distance := int(math.Round(DistanceMeters(user, center)))
	valid := distance <= radiusMeters

	var message string
	if valid {
		message = fmt.Sprintf("you are within the office area (%dm from center)", distance)
	} else {
		message = fmt.Sprintf("you are too far from the office (%dm away, maximum %dm)", distance, radiusMeters)
	}

	return GeofenceResult{
		IsValid:        valid,
		DistanceMeters: distance,
		Message:        message,
	}
}
