package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/theofylaktos99/gym-app/internal/area"
	"github.com/theofylaktos99/gym-app/internal/logger"
	"github.com/theofylaktos99/gym-app/internal/metrics"
	"github.com/theofylaktos99/gym-app/internal/user"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotBookingOwner = errors.New("booking belongs to another user")
	ErrAreaNotFound    = errors.New("gym area not found")
	ErrAreaNotBookable = errors.New("gym area is not bookable")
	ErrInvalidTime     = errors.New("invalid time, expected HH:MM")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidPrice    = errors.New("price must not be negative")
)

// Notifier delivers booking lifecycle notifications. Implementations must
// not block the request path.
type Notifier interface {
	BookingConfirmed(email, username string, b *Booking, areaName string)
	BookingCancelled(email, username string, b *Booking, areaName string)
}

type Service interface {
	Create(ctx context.Context, userID, tenantID string, req CreateBookingRequest) (*Booking, error)
	Cancel(ctx context.Context, userID, bookingID string) error
	Complete(ctx context.Context, bookingID string) error
	ListForUser(ctx context.Context, userID string) ([]Booking, error)
	ListByArea(ctx context.Context, areaID string) ([]BookingWithUser, error)
	Slots(ctx context.Context, areaID string, date time.Time) ([]Slot, error)
}

type service struct {
	repo     Repository
	areas    area.Repository
	users    user.Repository
	notifier Notifier
	slots    *SlotGenerator
	clock    Clock
}

func NewService(repo Repository, areas area.Repository, users user.Repository, notifier Notifier, slots *SlotGenerator, clock Clock) Service {
	return &service{
		repo:     repo,
		areas:    areas,
		users:    users,
		notifier: notifier,
		slots:    slots,
		clock:    clock,
	}
}

func (s *service) Create(ctx context.Context, userID, tenantID string, req CreateBookingRequest) (*Booking, error) {
	if _, err := time.Parse(TimeLayout, req.Time); err != nil {
		return nil, ErrInvalidTime
	}
	if req.Duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	date := s.clock.Now()
	if req.Date != "" {
		parsed, err := time.Parse(DateLayout, req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		date = parsed
	}

	a, err := s.areas.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAreaNotFound
		}
		return nil, err
	}
	if a.TenantID != tenantID {
		return nil, ErrAreaNotFound
	}
	if !a.IsBookable {
		return nil, ErrAreaNotBookable
	}

	// Friendly fast path; the partial unique index still decides races.
	taken, err := s.repo.SlotTaken(ctx, a.ID, date, req.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		metrics.RecordBooking("conflict")
		return nil, ErrSlotTaken
	}

	price := req.Price
	if price == 0 {
		price = a.PricePerHour * float64(req.Duration) / 60
	}

	b := &Booking{
		UserID:          userID,
		GymAreaID:       a.ID,
		BookingDate:     date,
		StartTime:       req.Time,
		DurationMinutes: req.Duration,
		TrainerName:     req.Trainer,
		Price:           price,
	}

	created, err := s.repo.CreateConfirmed(ctx, b)
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			metrics.RecordBooking("conflict")
		}
		return nil, err
	}

	metrics.RecordBooking("confirmed")
	s.notify(ctx, created, a, s.notifier.BookingConfirmed)

	return created, nil
}

func (s *service) Cancel(ctx context.Context, userID, bookingID string) error {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		return err
	}
	if b.UserID != userID {
		return ErrNotBookingOwner
	}

	if err := s.repo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, ErrBookingNotFoundOrAlreadyCancelled) {
			return ErrBookingNotFound
		}
		return err
	}

	metrics.RecordBookingCancellation()

	if a, aerr := s.areas.GetByID(ctx, b.GymAreaID); aerr == nil {
		b.Status = StatusCancelled
		s.notify(ctx, b, a, s.notifier.BookingCancelled)
	}

	return nil
}

func (s *service) Complete(ctx context.Context, bookingID string) error {
	err := s.repo.Complete(ctx, bookingID)
	if errors.Is(err, ErrBookingNotConfirmed) {
		return ErrBookingNotFound
	}
	return err
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]Booking, error) {
	return s.repo.ListConfirmedByUser(ctx, userID)
}

func (s *service) ListByArea(ctx context.Context, areaID string) ([]BookingWithUser, error) {
	return s.repo.ListByArea(ctx, areaID)
}

func (s *service) Slots(ctx context.Context, areaID string, date time.Time) ([]Slot, error) {
	return s.slots.Generate(ctx, areaID, date)
}

func (s *service) notify(ctx context.Context, b *Booking, a *area.GymArea, send func(email, username string, b *Booking, areaName string)) {
	u, err := s.users.FindByID(ctx, b.UserID)
	if err != nil {
		logger.Error("booking notification skipped", "booking_id", b.ID, "error", err)
		return
	}
	if u.Email == "" {
		return
	}
	send(u.Email, u.Username, b, a.Name.EN)
}
