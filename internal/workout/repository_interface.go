package workout

import (
	"context"
	"time"
)

type Repository interface {
	CreateProgram(ctx context.Context, tenantID string, req CreateProgramRequest) (*Program, error)
	GetProgram(ctx context.Context, id string) (*Program, error)
	ListPrograms(ctx context.Context, tenantID string) ([]*Program, error)

	StartSession(ctx context.Context, userID string, programID *string, start time.Time) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
	// ActiveSession returns the user's in-progress session, or nil when
	// there is none.
	ActiveSession(ctx context.Context, userID string) (*Session, error)
	// FinishSession transitions an in-progress session to the given
	// terminal status. Returns ErrSessionNotActive otherwise.
	FinishSession(ctx context.Context, id, status string, end time.Time, durationSeconds, caloriesBurned int) error
	ListSessions(ctx context.Context, userID string, limit int) ([]Session, error)
}
