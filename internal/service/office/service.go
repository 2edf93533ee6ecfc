package office

import (
	"context"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/office"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/user"
)

type OfficeServiceImpl struct {
	office.OfficeRepository
	user.UserRepository
}

func NewOfficeService(officeRepo office.OfficeRepository, userRepo user.UserRepository) office.OfficeService {
	return &OfficeServiceImpl{
		OfficeRepository: officeRepo,
		UserRepository:   userRepo,
	}
}

// CreateOffice implements office.OfficeService.
func (s *OfficeServiceImpl) CreateOffice(ctx context.Context, req office.CreateOfficeRequest) (office.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return office.OfficeResponse{}, err
	}

	created, err := s.OfficeRepository.Create(ctx, office.Office{
		Name:         req.Name,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		WorkStart:    req.WorkStart,
		WorkEnd:      req.WorkEnd,
	})
	if err != nil {
		return office.OfficeResponse{}, err
	}

	return office.ToResponse(created), nil
}

// GetOffice implements office.OfficeService.
func (s *OfficeServiceImpl) GetOffice(ctx context.Context, id string) (office.OfficeResponse, error) {
	o, err := s.OfficeRepository.GetByID(ctx, id)
	if err != nil {
		return office.OfficeResponse{}, err
	}
	return office.ToResponse(o), nil
}

// ListOffices implements office.OfficeService.
func (s *OfficeServiceImpl) ListOffices(ctx context.Context) ([]office.OfficeResponse, error) {
	offices, err := s.OfficeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]office.OfficeResponse, 0, len(offices))
	for _, o := range offices {
		responses = append(responses, office.ToResponse(o))
	}
	return responses, nil
}

// UpdateOffice implements office.OfficeService.
func (s *OfficeServiceImpl) UpdateOffice(ctx context.Context, req office.UpdateOfficeRequest) (office.OfficeResponse, error) {
	if err := req.Validate(); err != nil {
		return office.OfficeResponse{}, err
	}

	existing, err := s.OfficeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return office.OfficeResponse{}, err
	}

	existing.Name = req.Name
	existing.Address = req.Address
	existing.Latitude = req.Latitude
	existing.Longitude = req.Longitude
	existing.RadiusMeters = req.RadiusMeters
	existing.WorkStart = req.WorkStart
	existing.WorkEnd = req.WorkEnd

	if err := s.OfficeRepository.Update(ctx, existing); err != nil {
		return office.OfficeResponse{}, err
	}

	return office.ToResponse(existing), nil
}

// DeleteOffice implements office.OfficeService. An office that still has
// users assigned cannot be removed; the database FK is the backstop for
// races slipping past this check.
func (s *OfficeServiceImpl) DeleteOffice(ctx context.Context, id string) error {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.OfficeID == id {
			return office.ErrOfficeInUse
		}
	}

	return s.OfficeRepository.Delete(ctx, id)
}
