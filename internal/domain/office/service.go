package office

import "context"

type OfficeService interface {
	CreateOffice(ctx context.Context, req CreateOfficeRequest) (OfficeResponse, error)
	GetOffice(ctx context.Context, id string) (OfficeResponse, error)
	ListOffices(ctx context.Context) ([]OfficeResponse, error)
	UpdateOffice(ctx context.Context, req UpdateOfficeRequest) (OfficeResponse, error)
	DeleteOffice(ctx context.Context, id string) error
}
