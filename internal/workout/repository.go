package workout

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrProgramNotFound  = errors.New("workout program not found")
	ErrSessionNotActive = errors.New("workout session is not in progress")
)

const programColumns = `
	id, tenant_id, name, description, duration, difficulty, calories,
	icon, color, exercises, created_at, updated_at
`

const sessionColumns = `
	id, user_id, workout_program_id, start_time, end_time,
	duration_seconds, calories_burned, status, created_at, updated_at
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateProgram(ctx context.Context, tenantID string, req CreateProgramRequest) (*Program, error) {
	query := `
		INSERT INTO workout_programs (tenant_id, name, description, duration, difficulty, calories, icon, color, exercises)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE(NULLIF($7, ''), '💪'), COALESCE(NULLIF($8, ''), '#8B0000'), $9)
		RETURNING ` + programColumns

	var p Program
	err := r.db.GetContext(ctx, &p, query,
		tenantID, req.Name, req.Description, req.Duration, req.Difficulty,
		req.Calories, req.Icon, req.Color, req.Exercises,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetProgram(ctx context.Context, id string) (*Program, error) {
	query := `SELECT ` + programColumns + ` FROM workout_programs WHERE id = $1`

	var p Program
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	return &p, nil
}

func (r *repository) ListPrograms(ctx context.Context, tenantID string) ([]*Program, error) {
	query := `SELECT ` + programColumns + ` FROM workout_programs WHERE tenant_id = $1 ORDER BY created_at`

	var programs []*Program
	err := r.db.SelectContext(ctx, &programs, query, tenantID)
	if err != nil {
		return nil, err
	}

	return programs, nil
}

func (r *repository) StartSession(ctx context.Context, userID string, programID *string, start time.Time) (*Session, error) {
	query := `
		INSERT INTO workout_sessions (user_id, workout_program_id, start_time, status)
		VALUES ($1, $2, $3, 'in_progress')
		RETURNING ` + sessionColumns

	var s Session
	err := r.db.GetContext(ctx, &s, query, userID, programID, start)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetSession(ctx context.Context, id string) (*Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM workout_sessions WHERE id = $1`

	var s Session
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) ActiveSession(ctx context.Context, userID string) (*Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM workout_sessions WHERE user_id = $1 AND status = 'in_progress'`

	var s Session
	err := r.db.GetContext(ctx, &s, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &s, nil
}

func (r *repository) FinishSession(ctx context.Context, id, status string, end time.Time, durationSeconds, caloriesBurned int) error {
	query := `
		UPDATE workout_sessions
		SET status = $2, end_time = $3, duration_seconds = $4, calories_burned = $5, updated_at = NOW()
		WHERE id = $1 AND status = 'in_progress'
	`

	result, err := r.db.ExecContext(ctx, query, id, status, end, durationSeconds, caloriesBurned)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSessionNotActive
	}

	return nil
}

func (r *repository) ListSessions(ctx context.Context, userID string, limit int) ([]Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM workout_sessions
		WHERE user_id = $1
		ORDER BY start_time DESC
		LIMIT $2
	`

	var sessions []Session
	err := r.db.SelectContext(ctx, &sessions, query, userID, limit)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}
