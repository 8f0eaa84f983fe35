package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"biteengine/internal/dto"
	"biteengine/internal/handler"
	"biteengine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(email, name, avatar string) (*dto.LoginResponse, error) {
	args := m.Called(email, name, avatar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func setupAuthRouter(mockService *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewAuthHandler(mockService)
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAuthService)
		r := setupAuthRouter(mockService)

		expected := &dto.LoginResponse{
			Token: "signed-token",
			User: dto.UserInfo{
				ID:    "user-1",
				Name:  "Alice",
				Email: "alice@team.dev",
				Role:  "member",
			},
		}
		mockService.On("Login", "alice@team.dev", "Alice", "").Return(expected, nil).Once()

		body, _ := json.Marshal(dto.LoginDTO{Email: "alice@team.dev", Name: "Alice"})
		req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.LoginResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "signed-token", response.Token)
		assert.Equal(t, "alice@team.dev", response.User.Email)
		mockService.AssertExpectations(t)
	})

	t.Run("EmailNotAllowed", func(t *testing.T) {
		mockService := new(MockAuthService)
		r := setupAuthRouter(mockService)

		mockService.On("Login", "mallory@evil.dev", "", "").
			Return(nil, errors.New("email not allowed")).Once()

		body, _ := json.Marshal(dto.LoginDTO{Email: "mallory@evil.dev"})
		req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		mockService := new(MockAuthService)
		r := setupAuthRouter(mockService)

		body, _ := json.Marshal(dto.LoginDTO{Email: "not-an-email"})
		req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Login")
	})
}
