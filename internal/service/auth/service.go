package auth

import (
	"context"

	apperrors "github.com/velora-studio/booking-api/pkg/errors"

	"github.com/velora-studio/booking-api/internal/model"
	"github.com/velora-studio/booking-api/internal/repository"
	"github.com/velora-studio/booking-api/pkg/auth"
	"github.com/velora-studio/booking-api/pkg/security"
)

// Service authenticates salon staff for the admin surface.
type Service struct {
	users  repository.StaffUserRepository
	hasher security.PasswordHasher
	jwt    auth.JWTService
}

func NewService(users repository.StaffUserRepository, hasher security.PasswordHasher, jwtSvc auth.JWTService) *Service {
	return &Service{users: users, hasher: hasher, jwt: jwtSvc}
}

func (s *Service) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the account exists.
		return nil, apperrors.Unauthorized(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.Unauthorized(err)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.LoginResponse{Token: token, User: user}, nil
}

func (s *Service) ValidateToken(token string) (*auth.Claims, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}
	return claims, nil
}
