package tenant

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Settings is the free-form per-tenant configuration blob.
type Settings map[string]interface{}

func (s Settings) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}

func (s *Settings) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = Settings{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type %T for settings column", src)
	}
}

type Tenant struct {
	ID                 string     `db:"id" json:"id"`
	Name               string     `db:"name" json:"name"`
	Subdomain          string     `db:"subdomain" json:"subdomain"`
	Email              string     `db:"email" json:"email"`
	Phone              string     `db:"phone" json:"phone"`
	Address            string     `db:"address" json:"address"`
	SubscriptionPlan   string     `db:"subscription_plan" json:"subscription_plan"`
	SubscriptionStatus string     `db:"subscription_status" json:"subscription_status"`
	SubscriptionStart  time.Time  `db:"subscription_start" json:"subscription_start"`
	SubscriptionEnd    *time.Time `db:"subscription_end" json:"subscription_end,omitempty"`
	Settings           Settings   `db:"settings" json:"settings"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

type CreateTenantRequest struct {
	Name      string `json:"name" binding:"required"`
	Subdomain string `json:"subdomain" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}
