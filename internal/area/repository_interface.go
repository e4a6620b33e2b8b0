package area

import "context"

type Repository interface {
	Create(ctx context.Context, tenantID string, req CreateAreaRequest) (*GymArea, error)
	GetByID(ctx context.Context, id string) (*GymArea, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*GymArea, error)
	SaveOccupancy(ctx context.Context, a *GymArea) error
	SetStatus(ctx context.Context, tenantID, id, status string) error
}
