package area

import (
	"time"

	"github.com/theofylaktos99/gym-app/internal/i18n"
)

// Area statuses. Maintenance and ClassInSession are pinned externally and
// survive occupancy recomputation.
const (
	StatusAvailable      = "Available"
	StatusBusy           = "Busy"
	StatusFull           = "Full"
	StatusMaintenance    = "Maintenance"
	StatusClassInSession = "Class in Session"
)

type GymArea struct {
	ID           string    `db:"id" json:"id"`
	TenantID     string    `db:"tenant_id" json:"tenant_id"`
	Name         i18n.Text `db:"name" json:"name"`
	Description  i18n.Text `db:"description" json:"description"`
	Capacity     int       `db:"capacity" json:"capacity"`
	CurrentUsers int       `db:"current_users" json:"current_users"`
	Status       string    `db:"status" json:"status"`
	Icon         string    `db:"icon" json:"icon"`
	Color        string    `db:"color" json:"color"`
	Equipment    i18n.List `db:"equipment" json:"equipment"`
	IsBookable   bool      `db:"is_bookable" json:"is_bookable"`
	PricePerHour float64   `db:"price_per_hour" json:"price_per_hour"`
	Trainers     i18n.List `db:"trainers" json:"trainers"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// UsagePercent is in [0, 1]; a zero-capacity area counts as unused.
func (a *GymArea) UsagePercent() float64 {
	if a.Capacity <= 0 {
		return 0
	}
	return float64(a.CurrentUsers) / float64(a.Capacity)
}

// NextStatus derives an area status from its occupancy. Pinned statuses are
// sticky below the Busy threshold.
func NextStatus(current string, currentUsers, capacity int) string {
	usage := 0.0
	if capacity > 0 {
		usage = float64(currentUsers) / float64(capacity)
	}

	switch {
	case usage >= 1.0:
		return StatusFull
	case usage >= 0.8:
		return StatusBusy
	case current == StatusMaintenance || current == StatusClassInSession:
		return current
	default:
		return StatusAvailable
	}
}

type CreateAreaRequest struct {
	Name         i18n.Text `json:"name" binding:"required"`
	Description  i18n.Text `json:"description"`
	Capacity     int       `json:"capacity" binding:"required,min=1"`
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
	Equipment    i18n.List `json:"equipment"`
	IsBookable   bool      `json:"is_bookable"`
	PricePerHour float64   `json:"price_per_hour" binding:"gte=0"`
	Trainers     i18n.List `json:"trainers"`
}

type PinStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AreaStatus is the wire shape of the real-time gym-status endpoint.
type AreaStatus struct {
	ID           string    `json:"id"`
	Name         i18n.Text `json:"name"`
	Status       string    `json:"status"`
	Capacity     int       `json:"capacity"`
	CurrentUsers int       `json:"current_users"`
	UsagePercent float64   `json:"usage_percent"`
}

type GymStatusResponse struct {
	Areas     []AreaStatus `json:"areas"`
	Timestamp time.Time    `json:"timestamp"`
}
