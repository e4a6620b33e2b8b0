package tenant

import "context"

type Repository interface {
	Create(ctx context.Context, req CreateTenantRequest) (*Tenant, error)
	GetByID(ctx context.Context, id string) (*Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*Tenant, error)
	List(ctx context.Context) ([]Tenant, error)
	SubdomainExists(ctx context.Context, subdomain string) (bool, error)
}
