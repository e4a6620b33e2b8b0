package area

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAreaRepo struct{ mock.Mock }

func (m *MockAreaRepo) Create(ctx context.Context, tenantID string, req CreateAreaRequest) (*GymArea, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GymArea), args.Error(1)
}

func (m *MockAreaRepo) GetByID(ctx context.Context, id string) (*GymArea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GymArea), args.Error(1)
}

func (m *MockAreaRepo) ListByTenant(ctx context.Context, tenantID string) ([]*GymArea, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*GymArea), args.Error(1)
}

func (m *MockAreaRepo) SaveOccupancy(ctx context.Context, a *GymArea) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAreaRepo) SetStatus(ctx context.Context, tenantID, id, status string) error {
	return m.Called(ctx, tenantID, id, status).Error(0)
}

func TestService_ListWithTick(t *testing.T) {
	repo := new(MockAreaRepo)
	areas := []*GymArea{
		{ID: "a-1", Capacity: 10, CurrentUsers: 5, Status: StatusAvailable},
		{ID: "a-2", Capacity: 10, CurrentUsers: 8, Status: StatusBusy},
	}
	repo.On("ListByTenant", mock.Anything, "tenant-1").Return(areas, nil)
	repo.On("SaveOccupancy", mock.Anything, mock.AnythingOfType("*area.GymArea")).Return(nil)

	svc := NewService(repo, NewSimulator(rand.New(rand.NewSource(42))))

	for i := 0; i < 200; i++ {
		got, err := svc.ListWithTick(context.Background(), "tenant-1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, a := range got {
			require.GreaterOrEqual(t, a.CurrentUsers, 0)
			require.LessOrEqual(t, a.CurrentUsers, a.Capacity)
		}
	}
}

func TestService_ListWithTick_ConcurrentClamp(t *testing.T) {
	repo := new(MockAreaRepo)
	areas := []*GymArea{{ID: "a-1", Capacity: 5, CurrentUsers: 5, Status: StatusFull}}
	repo.On("ListByTenant", mock.Anything, "tenant-1").Return(areas, nil)
	repo.On("SaveOccupancy", mock.Anything, mock.AnythingOfType("*area.GymArea")).Return(nil)

	svc := NewService(repo, NewSimulator(rand.New(rand.NewSource(7))))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, err := svc.ListWithTick(context.Background(), "tenant-1")
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, areas[0].CurrentUsers, 0)
	assert.LessOrEqual(t, areas[0].CurrentUsers, areas[0].Capacity)
}

func TestService_PinStatus(t *testing.T) {
	t.Run("valid pin", func(t *testing.T) {
		repo := new(MockAreaRepo)
		repo.On("SetStatus", mock.Anything, "tenant-1", "a-1", StatusMaintenance).Return(nil)

		svc := NewService(repo, NewSimulator(rand.New(rand.NewSource(1))))
		err := svc.PinStatus(context.Background(), "tenant-1", "a-1", StatusMaintenance)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		repo := new(MockAreaRepo)
		svc := NewService(repo, NewSimulator(rand.New(rand.NewSource(1))))

		err := svc.PinStatus(context.Background(), "tenant-1", "a-1", "Exploded")
		assert.Equal(t, ErrInvalidStatus, err)
		repo.AssertNotCalled(t, "SetStatus")
	})
}

func TestSnapshot(t *testing.T) {
	areas := []*GymArea{
		{ID: "a-1", Capacity: 10, CurrentUsers: 8, Status: StatusBusy},
		{ID: "a-2", Capacity: 0, CurrentUsers: 0, Status: StatusAvailable},
	}

	snap := Snapshot(areas, areas[0].CreatedAt)
	require.Len(t, snap.Areas, 2)
	assert.InDelta(t, 80.0, snap.Areas[0].UsagePercent, 1e-9)
	assert.Equal(t, 0.0, snap.Areas[1].UsagePercent)
}
