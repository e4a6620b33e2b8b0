package booking

import "time"

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"

	// DateLayout and TimeLayout are the wire formats for booking dates and
	// start times. Conflict detection compares start times as exact strings.
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Booking struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	GymAreaID       string    `db:"gym_area_id" json:"gym_area_id"`
	BookingDate     time.Time `db:"booking_date" json:"-"`
	StartTime       string    `db:"start_time" json:"time"`
	DurationMinutes int       `db:"duration_minutes" json:"duration"`
	TrainerName     string    `db:"trainer_name" json:"trainer,omitempty"`
	Price           float64   `db:"price" json:"price"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Date returns the booking date in ISO form.
func (b *Booking) Date() string {
	return b.BookingDate.Format(DateLayout)
}

type CreateBookingRequest struct {
	RoomID   string  `json:"room_id" binding:"required"`
	Date     string  `json:"date"`
	Time     string  `json:"time" binding:"required"`
	Duration int     `json:"duration" binding:"required"`
	Trainer  string  `json:"trainer"`
	Price    float64 `json:"price"`
}

// BookingResponse is the wire shape returned to clients.
type BookingResponse struct {
	ID       string  `json:"id"`
	RoomID   string  `json:"room_id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Duration int     `json:"duration"`
	Trainer  string  `json:"trainer,omitempty"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		ID:       b.ID,
		RoomID:   b.GymAreaID,
		Date:     b.Date(),
		Time:     b.StartTime,
		Duration: b.DurationMinutes,
		Trainer:  b.TrainerName,
		Price:    b.Price,
		Status:   b.Status,
	}
}

// BookingWithUser joins booking rows with user info for admin listings.
type BookingWithUser struct {
	Booking
	Username  string `db:"username" json:"username"`
	UserEmail string `db:"user_email" json:"user_email"`
}

// Slot is one half-hour booking opportunity for an area.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
