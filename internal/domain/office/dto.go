package office

import (
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/validator"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/workday"
)

type CreateOfficeRequest struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
	WorkStart    string  `json:"work_start"`
	WorkEnd      string  `json:"work_end"`
}

func (r *CreateOfficeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.RadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius_meters must be greater than zero",
		})
	}

	if !workday.IsValidTime(r.WorkStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start",
			Message: "work_start must be in HH:MM format",
		})
	}

	if !workday.IsValidTime(r.WorkEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end",
			Message: "work_end must be in HH:MM format",
		})
	}

	// Overnight shifts are rejected outright rather than silently wrapping.
	if workday.IsValidTime(r.WorkStart) && workday.IsValidTime(r.WorkEnd) {
		startMins, _ := workday.MinutesOfDay(r.WorkStart)
		endMins, _ := workday.MinutesOfDay(r.WorkEnd)
		if endMins <= startMins {
			errs = append(errs, validator.ValidationError{
				Field:   "work_end",
				Message: "work_end must be after work_start on the same day",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateOfficeRequest struct {
	ID string `json:"-"`
	CreateOfficeRequest
}

type OfficeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
	WorkStart    string  `json:"work_start"`
	WorkEnd      string  `json:"work_end"`
}

func ToResponse(o Office) OfficeResponse {
	return OfficeResponse{
		ID:           o.ID,
		Name:         o.Name,
		Address:      o.Address,
		Latitude:     o.Latitude,
		Longitude:    o.Longitude,
		RadiusMeters: o.RadiusMeters,
		WorkStart:    o.WorkStart,
		WorkEnd:      o.WorkEnd,
	}
}
