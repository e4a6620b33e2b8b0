package booking

import (
	"context"
	"fmt"
	"time"
)

// Opening hours for bookable slots. The last slot starts at 21:30 so a
// half-hour session still finishes before close.
const (
	openingHour = 8
	closingHour = 22
)

// SlotGenerator produces half-hour booking slots for an area on a given
// date, marking slots that already hold a confirmed booking.
type SlotGenerator struct {
	repo  Repository
	clock Clock

	// When true, past hours are trimmed only if the requested date is
	// today. When false the current time bounds every date, which means
	// tomorrow's morning slots disappear as the day advances.
	anchorToDate bool
}

func NewSlotGenerator(repo Repository, clock Clock, anchorToDate bool) *SlotGenerator {
	return &SlotGenerator{repo: repo, clock: clock, anchorToDate: anchorToDate}
}

// Generate returns the available slots for the area on the given date.
func (g *SlotGenerator) Generate(ctx context.Context, areaID string, date time.Time) ([]Slot, error) {
	booked, err := g.repo.BookedTimes(ctx, areaID, date)
	if err != nil {
		return nil, err
	}

	now := g.clock.Now()
	startHour := openingHour
	trimPast := !g.anchorToDate || sameDay(date, now)
	if trimPast && now.Hour()+1 > openingHour {
		startHour = now.Hour() + 1
	}

	slots := make([]Slot, 0, (closingHour-openingHour)*2)
	for hour := startHour; hour < closingHour; hour++ {
		for _, minute := range []int{0, 30} {
			t := fmt.Sprintf("%02d:%02d", hour, minute)
			slots = append(slots, Slot{Time: t, Available: !booked[t]})
		}
	}

	return slots, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
