package user

import "context"

type Repository interface {
	Create(ctx context.Context, tenantID, username, email, passwordHash, role, firstName, lastName, language string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindActiveByUsername(ctx context.Context, tenantID, username string) (*User, error)
	UsernameExists(ctx context.Context, tenantID, username string) (bool, error)
	RecordLogin(ctx context.Context, id, language string) error
	AddWorkoutStats(ctx context.Context, id string, workouts, calories int) (*User, error)
	Deactivate(ctx context.Context, tenantID, id string) error
}
