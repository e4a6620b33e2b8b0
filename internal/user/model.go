package user

import "time"

const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleMember = "member"
)

type User struct {
	ID                 string     `db:"id" json:"id"`
	TenantID           string     `db:"tenant_id" json:"tenant_id"`
	Username           string     `db:"username" json:"username"`
	Email              string     `db:"email" json:"email"`
	PasswordHash       string     `db:"password_hash" json:"-"`
	Role               string     `db:"role" json:"role"`
	FirstName          string     `db:"first_name" json:"first_name"`
	LastName           string     `db:"last_name" json:"last_name"`
	Phone              string     `db:"phone" json:"phone"`
	TotalWorkouts      int        `db:"total_workouts" json:"total_workouts"`
	CaloriesBurned     int        `db:"calories_burned" json:"calories_burned"`
	StreakDays         int        `db:"streak_days" json:"streak_days"`
	MembershipLevel    string     `db:"membership_level" json:"membership_level"`
	IsActive           bool       `db:"is_active" json:"is_active"`
	LanguagePreference string     `db:"language_preference" json:"language_preference"`
	LastLogin          *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Language  string `json:"language"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Language string `json:"language"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Stats is the dashboard summary block for a member.
type Stats struct {
	TotalWorkouts   int    `json:"total_workouts"`
	CaloriesBurned  int    `json:"calories_burned"`
	StreakDays      int    `json:"streak_days"`
	MembershipLevel string `json:"membership_level"`
}

func (u *User) Stats() Stats {
	return Stats{
		TotalWorkouts:   u.TotalWorkouts,
		CaloriesBurned:  u.CaloriesBurned,
		StreakDays:      u.StreakDays,
		MembershipLevel: u.MembershipLevel,
	}
}
