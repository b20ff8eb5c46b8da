package service_test

import (
	"context"
	"testing"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	activeUser := &domain.User{
		ID:           1,
		Email:        "admin@test.com",
		PasswordHash: string(hash),
		Roles:        []string{"admin"},
		Status:       domain.UserStatusActive,
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "admin@test.com").Return(activeUser, nil)
		tokens.On("GenerateAccessToken", int32(1), "admin@test.com", []string{"admin"}).Return("signed-token", nil)

		user, token, err := svc.SignIn(ctx, "admin@test.com", "secret123")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, int32(1), user.ID)
	})

	t.Run("Unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "nobody@test.com").Return(nil, assert.AnError)

		user, token, err := svc.SignIn(ctx, "nobody@test.com", "secret123")
		assert.Equal(t, service.ErrInvalidCredentials, err)
		assert.Nil(t, user)
		assert.Empty(t, token)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "admin@test.com").Return(activeUser, nil)

		user, token, err := svc.SignIn(ctx, "admin@test.com", "wrong")
		assert.Equal(t, service.ErrInvalidCredentials, err)
		assert.Nil(t, user)
		assert.Empty(t, token)
	})

	t.Run("Suspended account", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		suspended := *activeUser
		suspended.Status = domain.UserStatusSuspended
		userRepo.On("GetByEmail", ctx, "admin@test.com").Return(&suspended, nil)

		user, token, err := svc.SignIn(ctx, "admin@test.com", "secret123")
		assert.Equal(t, service.ErrAccountNotActive, err)
		assert.Nil(t, user)
		assert.Empty(t, token)
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	tokens := new(MockTokenManager)
	svc := service.NewAuthService(userRepo, tokens)

	t.Run("Found", func(t *testing.T) {
		userRepo.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, Email: "me@test.com"}, nil)

		user, err := svc.Me(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, "me@test.com", user.Email)
	})

	t.Run("Missing", func(t *testing.T) {
		userRepo.On("GetByID", ctx, int32(99)).Return(nil, assert.AnError)

		user, err := svc.Me(ctx, 99)
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}
