package booking

import (
	"context"
	"time"
)

type Repository interface {
	// CreateConfirmed inserts a confirmed booking. It returns ErrSlotTaken
	// when another confirmed booking already holds the same
	// (area, date, start time) tuple.
	CreateConfirmed(ctx context.Context, b *Booking) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	Cancel(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	ListConfirmedByUser(ctx context.Context, userID string) ([]Booking, error)
	ListByArea(ctx context.Context, areaID string) ([]BookingWithUser, error)
	SlotTaken(ctx context.Context, areaID string, date time.Time, startTime string) (bool, error)
	BookedTimes(ctx context.Context, areaID string, date time.Time) (map[string]bool, error)
}
