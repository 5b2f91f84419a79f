package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pressdeck/pressdeck-api/internal/domain/user"
	"github.com/pressdeck/pressdeck-api/internal/pkg/jwt"
	"github.com/pressdeck/pressdeck-api/internal/pkg/password"
)

// Service handles authentication
type Service struct {
	userRepo user.Repository
	jwtSvc   *jwt.Service
}

// NewService creates auth service
func NewService(userRepo user.Repository, jwtSvc *jwt.Service) *Service {
	return &Service{userRepo: userRepo, jwtSvc: jwtSvc}
}

// Login verifies credentials and issues an access token
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil || !password.Verify(req.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountInactive
	}

	token, err := s.jwtSvc.GenerateAccessToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, u.ID); err != nil {
		log.Warn().Err(err).Str("user_id", u.ID.String()).Msg("Failed to record last login")
	}

	return &LoginResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(s.jwtSvc.AccessTTL()),
		User:        toUserResponse(u),
	}, nil
}

// Me returns the account behind an authenticated request
func (s *Service) Me(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrNotFound
	}
	resp := toUserResponse(u)
	return &resp, nil
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
	}
}
