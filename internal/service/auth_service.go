package service

import (
	"context"
	"errors"
	"fmt"

	"onlearn/internal/model"
	"onlearn/internal/repository"
	"onlearn/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrSessionInvalid     = errors.New("session user no longer exists")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService provides authentication related services
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ResolveSession(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Login checks credentials and issues a session token
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// ResolveSession maps a session token to the user it was issued for
func (s *authService) ResolveSession(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	claims, err := s.jwtUtil.ValidateToken(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if user == nil {
		return nil, ErrSessionInvalid
	}
	return user, nil
}
