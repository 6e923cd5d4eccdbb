package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"eventhub/internal/auth"
	"eventhub/internal/errors"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, email, name, password string, role model.UserRole) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	users repository.UserRepository
	jwt   *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users: users,
		jwt:   jwtService,
	}
}

// Signup creates a new user with a hashed password. The duplicate check and
// the insert run in one transaction; the unique index on email backstops
// concurrent signups.
func (s *authService) Signup(ctx context.Context, email, name, password string, role model.UserRole) (*model.User, error) {
	var created *model.User
	err := s.users.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository) error {
		existing, err := users.FindByEmail(ctx, email)
		if err == nil && existing != nil {
			return errors.ErrEmailTaken
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			return fmt.Errorf("check user existence: %w", err)
		}

		hashed, err := auth.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user := &model.User{
			Email:          email,
			Name:           name,
			HashedPassword: hashed,
			Role:           role,
			IsActive:       true,
		}
		if err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login authenticates a user and returns a bearer token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.HashedPassword) {
		return "", nil, errors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, errors.ErrInactiveUser
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}
