package booking

import (
	"context"
	"errors"
	"time"

	"github.com/theofylaktos99/gym-app/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrSlotTaken                         = errors.New("time slot already booked")
	ErrBookingNotFoundOrAlreadyCancelled = errors.New("booking not found or already cancelled")
	ErrBookingNotConfirmed               = errors.New("booking is not confirmed")
)

const uniqueViolation = "23505"

const bookingColumns = `
	id, user_id, gym_area_id, booking_date, start_time, duration_minutes,
	trainer_name, price, status, created_at, updated_at
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateConfirmed(ctx context.Context, b *Booking) (*Booking, error) {
	query := `
		INSERT INTO bookings (user_id, gym_area_id, booking_date, start_time, duration_minutes, trainer_name, price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'confirmed')
		RETURNING ` + bookingColumns

	var created Booking
	err := r.db.GetContext(ctx, &created, query,
		b.UserID, b.GymAreaID, b.BookingDate.Format(DateLayout), b.StartTime,
		b.DurationMinutes, b.TrainerName, b.Price,
	)
	if err != nil {
		// The partial unique index admits one confirmed booking per slot;
		// a violation means a concurrent request won the slot.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) Cancel(ctx context.Context, id string) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'confirmed'
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotFoundOrAlreadyCancelled
	}

	return nil
}

func (r *repository) Complete(ctx context.Context, id string) error {
	query := `
		UPDATE bookings
		SET status = 'completed', updated_at = NOW()
		WHERE id = $1 AND status = 'confirmed'
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotConfirmed
	}

	return nil
}

func (r *repository) ListConfirmedByUser(ctx context.Context, userID string) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1 AND status = 'confirmed'
		ORDER BY booking_date DESC, start_time DESC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListByArea(ctx context.Context, areaID string) ([]BookingWithUser, error) {
	query := `
		SELECT
			b.id, b.user_id, b.gym_area_id, b.booking_date, b.start_time,
			b.duration_minutes, b.trainer_name, b.price, b.status,
			b.created_at, b.updated_at,
			u.username AS username,
			u.email AS user_email
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		WHERE b.gym_area_id = $1
		ORDER BY b.booking_date DESC, b.start_time DESC
	`

	var bookings []BookingWithUser
	err := r.db.SelectContext(ctx, &bookings, query, areaID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) SlotTaken(ctx context.Context, areaID string, date time.Time, startTime string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE gym_area_id = $1 AND booking_date = $2 AND start_time = $3 AND status = 'confirmed'
		)
	`

	return db.Exists(ctx, r.db, query, areaID, date.Format(DateLayout), startTime)
}

func (r *repository) BookedTimes(ctx context.Context, areaID string, date time.Time) (map[string]bool, error) {
	query := `
		SELECT start_time
		FROM bookings
		WHERE gym_area_id = $1 AND booking_date = $2 AND status = 'confirmed'
	`

	var times []string
	err := r.db.SelectContext(ctx, &times, query, areaID, date.Format(DateLayout))
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(times))
	for _, t := range times {
		booked[t] = true
	}

	return booked, nil
}
