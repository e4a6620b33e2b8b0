package workout

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { sqlxDB.Close() }
}

func programRows(id, tenantID string, calories int, created time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tenant_id", "name", "description", "duration", "difficulty",
		"calories", "icon", "color", "exercises", "created_at", "updated_at",
	}).AddRow(
		id, tenantID,
		[]byte(`{"en":"Full Body","el":"Ολόσωμο"}`),
		[]byte(`{"en":"","el":""}`),
		"45 min", "intermediate", calories, "💪", "#8B0000",
		[]byte(`[{"name":{"en":"Squats","el":"Καθίσματα"},"sets":3,"reps":"12"}]`),
		created, created,
	)
}

func sessionRows(id, userID string, start time.Time, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "workout_program_id", "start_time", "end_time",
		"duration_seconds", "calories_burned", "status", "created_at", "updated_at",
	}).AddRow(id, userID, nil, start, nil, nil, nil, status, start, start)
}

func TestGetProgram(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery("SELECT .+ FROM workout_programs WHERE id").
		WithArgs("p-1").
		WillReturnRows(programRows("p-1", "tenant-1", 320, now))

	p, err := repo.GetProgram(context.Background(), "p-1")
	require.NoError(t, err)
	require.Equal(t, "Full Body", p.Name.EN)
	require.Equal(t, 320, p.Calories)
	require.Len(t, p.Exercises, 1)
	require.Equal(t, "Squats", p.Exercises[0].Name.EN)
}

func TestGetProgramNotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT .+ FROM workout_programs WHERE id").
		WithArgs("p-ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetProgram(context.Background(), "p-ghost")
	require.Equal(t, ErrProgramNotFound, err)
}

func TestStartSession(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	start := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO workout_sessions").
		WithArgs("u-1", nil, start).
		WillReturnRows(sessionRows("s-1", "u-1", start, SessionInProgress))

	s, err := repo.StartSession(context.Background(), "u-1", nil, start)
	require.NoError(t, err)
	require.Equal(t, SessionInProgress, s.Status)
	require.Nil(t, s.WorkoutProgramID)
}

func TestActiveSessionNone(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT .+ FROM workout_sessions WHERE user_id").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	s, err := repo.ActiveSession(context.Background(), "u-1")
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestFinishSessionGuarded(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	end := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE workout_sessions").
		WithArgs("s-1", SessionCompleted, end, 2700, 320).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.FinishSession(context.Background(), "s-1", SessionCompleted, end, 2700, 320))

	mock.ExpectExec("UPDATE workout_sessions").
		WithArgs("s-done", SessionCompleted, end, 2700, 320).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.FinishSession(context.Background(), "s-done", SessionCompleted, end, 2700, 320)
	require.Equal(t, ErrSessionNotActive, err)
}
