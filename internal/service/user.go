package service

import (
	"context"
	"errors"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmailTaken = errors.New("email is already registered")

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, user *domain.User, password string) error {
	if existing, err := s.userRepo.GetByEmail(ctx, user.Email); err == nil && existing != nil {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	return s.userRepo.Create(ctx, user)
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, user *domain.User) error {
	current, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return err
	}
	// PATCH semantics: only overwrite what the caller sent.
	if user.Name == "" {
		user.Name = current.Name
	}
	if user.Email == "" {
		user.Email = current.Email
	}
	if user.PhoneNumber == "" {
		user.PhoneNumber = current.PhoneNumber
	}
	if user.Gender == "" {
		user.Gender = current.Gender
	}
	if user.Status == "" {
		user.Status = current.Status
	}
	if len(user.Roles) == 0 {
		user.Roles = current.Roles
	}
	if user.DateOfBirth == nil {
		user.DateOfBirth = current.DateOfBirth
	}
	if user.YearOfBirth == 0 {
		user.YearOfBirth = current.YearOfBirth
	}
	if user.DeviceID == "" {
		user.DeviceID = current.DeviceID
	}
	return s.userRepo.Update(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, id int32) error {
	return s.userRepo.Delete(ctx, id)
}
