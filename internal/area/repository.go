package area

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrAreaNotFound = errors.New("gym area not found")

const areaColumns = `
	id, tenant_id, name, description, capacity, current_users, status,
	icon, color, equipment, is_bookable, price_per_hour, trainers,
	created_at, updated_at
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tenantID string, req CreateAreaRequest) (*GymArea, error) {
	query := `
		INSERT INTO gym_areas (tenant_id, name, description, capacity, icon, color, equipment, is_bookable, price_per_hour, trainers)
		VALUES ($1, $2, $3, $4, COALESCE(NULLIF($5, ''), '💪'), COALESCE(NULLIF($6, ''), '#8B0000'), $7, $8, $9, $10)
		RETURNING ` + areaColumns

	var a GymArea
	err := r.db.GetContext(ctx, &a, query,
		tenantID, req.Name, req.Description, req.Capacity,
		req.Icon, req.Color, req.Equipment, req.IsBookable, req.PricePerHour, req.Trainers,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*GymArea, error) {
	query := `SELECT ` + areaColumns + ` FROM gym_areas WHERE id = $1`

	var a GymArea
	err := r.db.GetContext(ctx, &a, query, id)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) ListByTenant(ctx context.Context, tenantID string) ([]*GymArea, error) {
	query := `SELECT ` + areaColumns + ` FROM gym_areas WHERE tenant_id = $1 ORDER BY created_at ASC`

	var areas []*GymArea
	err := r.db.SelectContext(ctx, &areas, query, tenantID)
	if err != nil {
		return nil, err
	}

	return areas, nil
}

func (r *repository) SaveOccupancy(ctx context.Context, a *GymArea) error {
	query := `
		UPDATE gym_areas
		SET current_users = $2, status = $3, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, a.ID, a.CurrentUsers, a.Status)
	return err
}

func (r *repository) SetStatus(ctx context.Context, tenantID, id, status string) error {
	query := `
		UPDATE gym_areas
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, id, tenantID, status)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrAreaNotFound
	}

	return nil
}
