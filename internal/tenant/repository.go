package tenant

import (
	"context"
	"errors"

	"github.com/theofylaktos99/gym-app/internal/db"

	"github.com/jmoiron/sqlx"
)

var ErrTenantNotFound = errors.New("tenant not found")

const tenantColumns = `
	id, name, subdomain, email, phone, address,
	subscription_plan, subscription_status, subscription_start, subscription_end,
	settings, created_at, updated_at
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req CreateTenantRequest) (*Tenant, error) {
	query := `
		INSERT INTO tenants (name, subdomain, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + tenantColumns

	var t Tenant
	err := r.db.GetContext(ctx, &t, query, req.Name, req.Subdomain, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`

	var t Tenant
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) GetBySubdomain(ctx context.Context, subdomain string) (*Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE subdomain = $1`

	var t Tenant
	err := r.db.GetContext(ctx, &t, query, subdomain)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) List(ctx context.Context) ([]Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY created_at DESC`

	var tenants []Tenant
	err := r.db.SelectContext(ctx, &tenants, query)
	if err != nil {
		return nil, err
	}

	return tenants, nil
}

func (r *repository) SubdomainExists(ctx context.Context, subdomain string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM tenants WHERE subdomain = $1)`

	return db.Exists(ctx, r.db, query, subdomain)
}
