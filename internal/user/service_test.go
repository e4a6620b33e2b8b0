package user

import (
	"context"
	"errors"
	"testing"

	"github.com/theofylaktos99/gym-app/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, tenantID, username, email, passwordHash, role, firstName, lastName, language string) (*User, error) {
	args := m.Called(ctx, tenantID, username, email, passwordHash, role, firstName, lastName, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindActiveByUsername(ctx context.Context, tenantID, username string) (*User, error) {
	args := m.Called(ctx, tenantID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) UsernameExists(ctx context.Context, tenantID, username string) (bool, error) {
	args := m.Called(ctx, tenantID, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) RecordLogin(ctx context.Context, id, language string) error {
	return m.Called(ctx, id, language).Error(0)
}

func (m *MockUserRepo) AddWorkoutStats(ctx context.Context, id string, workouts, calories int) (*User, error) {
	args := m.Called(ctx, id, workouts, calories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) Deactivate(ctx context.Context, tenantID, id string) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func TestService_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("UsernameExists", mock.Anything, "tenant-1", "maria").Return(false, nil)
		repo.On("Create", mock.Anything, "tenant-1", "maria", "maria@example.com", mock.AnythingOfType("string"), RoleMember, "Maria", "P", "el").
			Return(&User{ID: "u-1", TenantID: "tenant-1", Username: "maria", Role: RoleMember}, nil)

		svc := NewService(repo, "secret")
		resp, err := svc.Register(context.Background(), "tenant-1", RegisterRequest{
			Username:  "maria",
			Email:     "maria@example.com",
			Password:  "password123",
			FirstName: "Maria",
			LastName:  "P",
			Language:  "el",
		})

		require.NoError(t, err)
		assert.Equal(t, "u-1", resp.User.ID)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)

		claims, err := auth.ValidateToken(resp.AccessToken, "secret")
		require.NoError(t, err)
		assert.Equal(t, "tenant-1", claims.TenantID)
		repo.AssertExpectations(t)
	})

	t.Run("username taken", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("UsernameExists", mock.Anything, "tenant-1", "maria").Return(true, nil)

		svc := NewService(repo, "secret")
		_, err := svc.Register(context.Background(), "tenant-1", RegisterRequest{
			Username: "maria",
			Password: "password123",
		})

		assert.Equal(t, ErrUsernameExists, err)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestService_Login(t *testing.T) {
	hash, _ := auth.HashPassword("password123")

	t.Run("successful login records last login", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("FindActiveByUsername", mock.Anything, "tenant-1", "maria").Return(&User{
			ID:                 "u-1",
			TenantID:           "tenant-1",
			Username:           "maria",
			PasswordHash:       hash,
			Role:               RoleMember,
			LanguagePreference: "en",
		}, nil)
		repo.On("RecordLogin", mock.Anything, "u-1", "el").Return(nil)

		svc := NewService(repo, "secret")
		resp, err := svc.Login(context.Background(), "tenant-1", LoginRequest{
			Username: "maria",
			Password: "password123",
			Language: "el",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		repo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("FindActiveByUsername", mock.Anything, "tenant-1", "maria").Return(&User{
			ID:           "u-1",
			PasswordHash: hash,
		}, nil)

		svc := NewService(repo, "secret")
		_, err := svc.Login(context.Background(), "tenant-1", LoginRequest{
			Username: "maria",
			Password: "wrong",
		})

		assert.Equal(t, ErrInvalidCredentials, err)
		repo.AssertNotCalled(t, "RecordLogin")
	})

	t.Run("unknown or inactive user", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("FindActiveByUsername", mock.Anything, "tenant-1", "ghost").Return(nil, errors.New("sql: no rows in result set"))

		svc := NewService(repo, "secret")
		_, err := svc.Login(context.Background(), "tenant-1", LoginRequest{
			Username: "ghost",
			Password: "password123",
		})

		assert.Equal(t, ErrInvalidCredentials, err)
	})
}

func TestService_RefreshToken(t *testing.T) {
	_, refresh, err := auth.GenerateTokens("u-1", "tenant-1", "maria", RoleMember, "secret")
	require.NoError(t, err)

	svc := NewService(new(MockUserRepo), "secret")

	access, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)

	claims, err := auth.ValidateToken(access, "secret")
	require.NoError(t, err)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, "u-1", claims.UserID)
}
