package office

import (
	"time"

	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/geo"
)

type Office struct {
	ID           string
	Name         string
	Address      string
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	WorkStart    string // HH:MM
	WorkEnd      string // HH:MM, same day, strictly after WorkStart
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Center returns the geofence center of the office.
func (o *Office) Center() geo.Point {
	return geo.Point{Latitude: o.Latitude, Longitude: o.Longitude}
}
