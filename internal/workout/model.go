package workout

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/theofylaktos99/gym-app/internal/i18n"
)

const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
	SessionCancelled  = "cancelled"
)

// Exercise is a single entry of a program's exercise list.
type Exercise struct {
	Name i18n.Text `json:"name"`
	Sets int       `json:"sets"`
	Reps string    `json:"reps"`
}

type ExerciseList []Exercise

func (l ExerciseList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Exercise{})
	}
	return json.Marshal(l)
}

func (l *ExerciseList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for JSON column", src)
	}
}

type Program struct {
	ID          string       `db:"id" json:"id"`
	TenantID    string       `db:"tenant_id" json:"tenant_id"`
	Name        i18n.Text    `db:"name" json:"name"`
	Description i18n.Text    `db:"description" json:"description"`
	Duration    string       `db:"duration" json:"duration"`
	Difficulty  string       `db:"difficulty" json:"difficulty"`
	Calories    int          `db:"calories" json:"calories"`
	Icon        string       `db:"icon" json:"icon"`
	Color       string       `db:"color" json:"color"`
	Exercises   ExerciseList `db:"exercises" json:"exercises"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

type Session struct {
	ID               string     `db:"id" json:"id"`
	UserID           string     `db:"user_id" json:"user_id"`
	WorkoutProgramID *string    `db:"workout_program_id" json:"workout_program_id,omitempty"`
	StartTime        time.Time  `db:"start_time" json:"start_time"`
	EndTime          *time.Time `db:"end_time" json:"end_time,omitempty"`
	DurationSeconds  *int       `db:"duration_seconds" json:"duration_seconds,omitempty"`
	CaloriesBurned   *int       `db:"calories_burned" json:"calories_burned,omitempty"`
	Status           string     `db:"status" json:"status"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

type CreateProgramRequest struct {
	Name        i18n.Text    `json:"name" binding:"required"`
	Description i18n.Text    `json:"description"`
	Duration    string       `json:"duration"`
	Difficulty  string       `json:"difficulty"`
	Calories    int          `json:"calories" binding:"gte=0"`
	Icon        string       `json:"icon"`
	Color       string       `json:"color"`
	Exercises   ExerciseList `json:"exercises"`
}

type StartSessionRequest struct {
	ProgramID string `json:"program_id"`
}

type CompleteSessionRequest struct {
	CaloriesBurned int `json:"calories_burned" binding:"gte=0"`
}
