package service

import (
	"context"
	"errors"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/logger"
	"sharelah-backend/internal/repository"
	"sharelah-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotActive   = errors.New("account is not active")
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if user.Status != domain.UserStatusActive {
		return nil, "", ErrAccountNotActive
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Roles)
	if err != nil {
		return nil, "", err
	}

	logger.Info("User signed in", "user_id", user.ID, "email", user.Email)
	return user, token, nil
}

func (s *authService) Me(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
