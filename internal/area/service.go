package area

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/theofylaktos99/gym-app/internal/metrics"
)

var ErrInvalidStatus = errors.New("invalid area status")

type Service interface {
	Create(ctx context.Context, tenantID string, req CreateAreaRequest) (*GymArea, error)
	// ListWithTick returns the tenant's areas after applying one occupancy
	// simulation tick and persisting the changes.
	ListWithTick(ctx context.Context, tenantID string) ([]*GymArea, error)
	// List returns the areas without perturbing them.
	List(ctx context.Context, tenantID string) ([]*GymArea, error)
	GetByID(ctx context.Context, id string) (*GymArea, error)
	PinStatus(ctx context.Context, tenantID, id, status string) error
}

type service struct {
	repo Repository
	sim  *Simulator

	// Serializes ticks: the rand source is not goroutine-safe and the
	// [0, capacity] clamp must hold under concurrent dashboard renders.
	mu sync.Mutex
}

func NewService(repo Repository, sim *Simulator) Service {
	return &service{repo: repo, sim: sim}
}

func (s *service) Create(ctx context.Context, tenantID string, req CreateAreaRequest) (*GymArea, error) {
	return s.repo.Create(ctx, tenantID, req)
}

func (s *service) ListWithTick(ctx context.Context, tenantID string) ([]*GymArea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	areas, err := s.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	changed := s.sim.Tick(areas)
	for _, a := range changed {
		if err := s.repo.SaveOccupancy(ctx, a); err != nil {
			return nil, err
		}
	}
	metrics.RecordOccupancyTick(len(changed))

	return areas, nil
}

func (s *service) List(ctx context.Context, tenantID string) ([]*GymArea, error) {
	return s.repo.ListByTenant(ctx, tenantID)
}

func (s *service) GetByID(ctx context.Context, id string) (*GymArea, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAreaNotFound
	}
	return a, nil
}

func (s *service) PinStatus(ctx context.Context, tenantID, id, status string) error {
	switch status {
	case StatusMaintenance, StatusClassInSession, StatusAvailable:
	default:
		return ErrInvalidStatus
	}

	return s.repo.SetStatus(ctx, tenantID, id, status)
}

// Snapshot converts areas to the gym-status wire shape.
func Snapshot(areas []*GymArea, now time.Time) GymStatusResponse {
	statuses := make([]AreaStatus, 0, len(areas))
	for _, a := range areas {
		statuses = append(statuses, AreaStatus{
			ID:           a.ID,
			Name:         a.Name,
			Status:       a.Status,
			Capacity:     a.Capacity,
			CurrentUsers: a.CurrentUsers,
			UsagePercent: a.UsagePercent() * 100,
		})
	}

	return GymStatusResponse{Areas: statuses, Timestamp: now}
}
