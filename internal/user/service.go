package user

import (
	"context"
	"errors"

	"github.com/theofylaktos99/gym-app/internal/auth"
)

var (
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service interface {
	Register(ctx context.Context, tenantID string, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, tenantID string, req LoginRequest) (*AuthResponse, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	Deactivate(ctx context.Context, tenantID, userID string) error
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Register(ctx context.Context, tenantID string, req RegisterRequest) (*AuthResponse, error) {
	exists, err := s.repo.UsernameExists(ctx, tenantID, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	lang := req.Language
	if lang == "" {
		lang = "en"
	}

	u, err := s.repo.Create(ctx, tenantID, req.Username, req.Email, hash, RoleMember, req.FirstName, req.LastName, lang)
	if err != nil {
		return nil, err
	}

	access, refresh, err := auth.GenerateTokens(u.ID, u.TenantID, u.Username, u.Role, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: u, AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) Login(ctx context.Context, tenantID string, req LoginRequest) (*AuthResponse, error) {
	u, err := s.repo.FindActiveByUsername(ctx, tenantID, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	lang := req.Language
	if lang == "" {
		lang = u.LanguagePreference
	}

	if err := s.repo.RecordLogin(ctx, u.ID, lang); err != nil {
		return nil, err
	}

	access, refresh, err := auth.GenerateTokens(u.ID, u.TenantID, u.Username, u.Role, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: u, AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) GetByID(ctx context.Context, userID string) (*User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	access, _, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", err
	}
	return access, nil
}

func (s *service) Deactivate(ctx context.Context, tenantID, userID string) error {
	return s.repo.Deactivate(ctx, tenantID, userID)
}
