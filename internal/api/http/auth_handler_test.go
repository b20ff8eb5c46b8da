package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
func (m *MockAuthService) Me(ctx context.Context, userID int32) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func postJSON(path string, body interface{}) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandler_SignIn(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockAuthService)
		h := NewAuthHandler(svc)

		user := &domain.User{ID: 1, Email: "admin@test.com", Roles: []string{"admin"}}
		svc.On("SignIn", mock.Anything, "admin@test.com", "secret123").Return(user, "signed-token", nil)

		rec := httptest.NewRecorder()
		h.SignIn(rec, postJSON("/auth/sign-in", map[string]string{
			"email":    "admin@test.com",
			"password": "secret123",
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]json.RawMessage
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "user")
		assert.Contains(t, body, "access_token")
	})

	t.Run("Missing fields", func(t *testing.T) {
		svc := new(MockAuthService)
		h := NewAuthHandler(svc)

		rec := httptest.NewRecorder()
		h.SignIn(rec, postJSON("/auth/sign-in", map[string]string{"email": "admin@test.com"}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		svc := new(MockAuthService)
		h := NewAuthHandler(svc)

		svc.On("SignIn", mock.Anything, "admin@test.com", "wrong").Return(nil, "", service.ErrInvalidCredentials)

		rec := httptest.NewRecorder()
		h.SignIn(rec, postJSON("/auth/sign-in", map[string]string{
			"email":    "admin@test.com",
			"password": "wrong",
		}))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Suspended account", func(t *testing.T) {
		svc := new(MockAuthService)
		h := NewAuthHandler(svc)

		svc.On("SignIn", mock.Anything, "admin@test.com", "secret123").Return(nil, "", service.ErrAccountNotActive)

		rec := httptest.NewRecorder()
		h.SignIn(rec, postJSON("/auth/sign-in", map[string]string{
			"email":    "admin@test.com",
			"password": "secret123",
		}))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
