package workout

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/theofylaktos99/gym-app/internal/metrics"
	"github.com/theofylaktos99/gym-app/internal/user"
)

var (
	ErrSessionNotFound   = errors.New("workout session not found")
	ErrNotSessionOwner   = errors.New("workout session belongs to another user")
	ErrSessionInProgress = errors.New("another workout session is already in progress")
)

// Clock lets tests control session timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type Service interface {
	CreateProgram(ctx context.Context, tenantID string, req CreateProgramRequest) (*Program, error)
	ListPrograms(ctx context.Context, tenantID string) ([]*Program, error)

	Start(ctx context.Context, userID string, req StartSessionRequest) (*Session, error)
	Complete(ctx context.Context, userID, sessionID string, req CompleteSessionRequest) (*user.User, error)
	Cancel(ctx context.Context, userID, sessionID string) error
	History(ctx context.Context, userID string) ([]Session, error)
}

type service struct {
	repo  Repository
	users user.Repository
	clock Clock
}

func NewService(repo Repository, users user.Repository, clock Clock) Service {
	if clock == nil {
		clock = systemClock{}
	}
	return &service{repo: repo, users: users, clock: clock}
}

func (s *service) CreateProgram(ctx context.Context, tenantID string, req CreateProgramRequest) (*Program, error) {
	return s.repo.CreateProgram(ctx, tenantID, req)
}

func (s *service) ListPrograms(ctx context.Context, tenantID string) ([]*Program, error) {
	return s.repo.ListPrograms(ctx, tenantID)
}

func (s *service) Start(ctx context.Context, userID string, req StartSessionRequest) (*Session, error) {
	active, err := s.repo.ActiveSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrSessionInProgress
	}

	var programID *string
	if req.ProgramID != "" {
		if _, err := s.repo.GetProgram(ctx, req.ProgramID); err != nil {
			return nil, err
		}
		programID = &req.ProgramID
	}

	return s.repo.StartSession(ctx, userID, programID, s.clock.Now())
}

// Complete closes the session and credits the workout to the user's stats.
// The updated user is returned so handlers can show the new totals.
func (s *service) Complete(ctx context.Context, userID, sessionID string, req CompleteSessionRequest) (*user.User, error) {
	sess, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	calories := req.CaloriesBurned
	if calories == 0 && sess.WorkoutProgramID != nil {
		if p, perr := s.repo.GetProgram(ctx, *sess.WorkoutProgramID); perr == nil {
			calories = p.Calories
		}
	}

	end := s.clock.Now()
	duration := int(end.Sub(sess.StartTime).Seconds())
	if duration < 0 {
		duration = 0
	}

	if err := s.repo.FinishSession(ctx, sessionID, SessionCompleted, end, duration, calories); err != nil {
		return nil, err
	}

	metrics.RecordWorkoutCompleted()

	return s.users.AddWorkoutStats(ctx, userID, 1, calories)
}

func (s *service) Cancel(ctx context.Context, userID, sessionID string) error {
	sess, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	end := s.clock.Now()
	duration := int(end.Sub(sess.StartTime).Seconds())
	if duration < 0 {
		duration = 0
	}

	return s.repo.FinishSession(ctx, sessionID, SessionCancelled, end, duration, 0)
}

func (s *service) History(ctx context.Context, userID string) ([]Session, error) {
	return s.repo.ListSessions(ctx, userID, 50)
}

func (s *service) ownedSession(ctx context.Context, userID, sessionID string) (*Session, error) {
	sess, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if sess.UserID != userID {
		return nil, ErrNotSessionOwner
	}
	return sess, nil
}
