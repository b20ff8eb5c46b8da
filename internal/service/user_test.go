package service_test

import (
	"context"
	"testing"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Hashes password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByEmail", ctx, "new@test.com").Return(nil, assert.AnError)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user := &domain.User{Name: "New User", Email: "new@test.com"}
		err := svc.CreateUser(ctx, user, "plaintext")
		assert.NoError(t, err)
		assert.NotEqual(t, "plaintext", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("plaintext")))
	})

	t.Run("Duplicate email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByEmail", ctx, "taken@test.com").Return(&domain.User{ID: 1, Email: "taken@test.com"}, nil)

		err := svc.CreateUser(ctx, &domain.User{Email: "taken@test.com"}, "pw")
		assert.Equal(t, service.ErrEmailTaken, err)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Merges unset fields from current", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		current := &domain.User{
			ID:          5,
			Name:        "Old Name",
			Email:       "old@test.com",
			PhoneNumber: "123",
			Gender:      domain.UserGenderFemale,
			Status:      domain.UserStatusActive,
			Roles:       []string{"user"},
		}
		userRepo.On("GetByID", ctx, int32(5)).Return(current, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		patch := &domain.User{ID: 5, Name: "New Name"}
		err := svc.UpdateUser(ctx, patch)
		assert.NoError(t, err)
		assert.Equal(t, "New Name", patch.Name)
		assert.Equal(t, "old@test.com", patch.Email)
		assert.Equal(t, domain.UserStatusActive, patch.Status)
		assert.Equal(t, []string{"user"}, patch.Roles)
	})

	t.Run("Missing user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByID", ctx, int32(404)).Return(nil, assert.AnError)

		err := svc.UpdateUser(ctx, &domain.User{ID: 404})
		assert.Error(t, err)
	})
}
