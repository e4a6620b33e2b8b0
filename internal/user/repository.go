package user

import (
	"context"
	"errors"

	"github.com/theofylaktos99/gym-app/internal/db"

	"github.com/jmoiron/sqlx"
)

var ErrUserNotFound = errors.New("user not found")

const userColumns = `
	id, tenant_id, username, email, password_hash, role,
	first_name, last_name, phone,
	total_workouts, calories_burned, streak_days, membership_level,
	is_active, language_preference, last_login, created_at, updated_at
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tenantID, username, email, passwordHash, role, firstName, lastName, language string) (*User, error) {
	query := `
		INSERT INTO users (tenant_id, username, email, password_hash, role, first_name, last_name, language_preference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns

	var u User
	err := r.db.GetContext(ctx, &u, query, tenantID, username, email, passwordHash, role, firstName, lastName, language)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var u User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindActiveByUsername(ctx context.Context, tenantID, username string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE tenant_id = $1 AND username = $2 AND is_active = TRUE`

	var u User
	err := r.db.GetContext(ctx, &u, query, tenantID, username)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) UsernameExists(ctx context.Context, tenantID, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE tenant_id = $1 AND username = $2)`

	return db.Exists(ctx, r.db, query, tenantID, username)
}

func (r *repository) RecordLogin(ctx context.Context, id, language string) error {
	query := `
		UPDATE users
		SET last_login = NOW(), language_preference = $2, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, language)
	return err
}

func (r *repository) AddWorkoutStats(ctx context.Context, id string, workouts, calories int) (*User, error) {
	query := `
		UPDATE users
		SET total_workouts = total_workouts + $2,
		    calories_burned = calories_burned + $3,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var u User
	err := r.db.GetContext(ctx, &u, query, id, workouts, calories)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) Deactivate(ctx context.Context, tenantID, id string) error {
	query := `
		UPDATE users
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND is_active = TRUE
	`

	result, err := r.db.ExecContext(ctx, query, id, tenantID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
