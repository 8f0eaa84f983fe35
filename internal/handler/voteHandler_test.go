package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"biteengine/internal/dto"
	"biteengine/internal/handler"
	"biteengine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockVoteService struct {
	mock.Mock
}

func (m *MockVoteService) CastVote(ctx context.Context, identity service.Identity, restaurantID, restaurantName string) (*dto.VoteResponse, error) {
	args := m.Called(ctx, identity, restaurantID, restaurantName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VoteResponse), args.Error(1)
}

func (m *MockVoteService) RetractVote(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- SETUP ---

const testRestaurantID = "11111111-1111-1111-1111-111111111111"

func testIdentity() service.Identity {
	return service.Identity{ID: "test-user-id", Name: "Tester", Role: "member"}
}

// identityMiddleware stands in for the JWT middleware during tests
func identityMiddleware(identity service.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", identity)
		c.Next()
	}
}

func setupVoteRouter(mockService *MockVoteService, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewVoteHandler(mockService)

	rg := r.Group("/api")
	if authenticated {
		rg.Use(identityMiddleware(testIdentity()))
	}
	h.RegisterRoutes(rg)
	return r
}

// --- TESTS ---

func TestVoteHandler_Cast(t *testing.T) {
	castDTO := dto.CastVoteDTO{
		RestaurantID:   testRestaurantID,
		RestaurantName: "스시텐",
	}

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockVoteService)
		r := setupVoteRouter(mockService, true)

		stored := &dto.VoteResponse{
			ID:           "vote-1",
			UserID:       "test-user-id",
			UserName:     "Tester",
			RestaurantID: testRestaurantID,
			CreatedAt:    time.Now(),
		}
		mockService.On("CastVote", mock.Anything, testIdentity(), testRestaurantID, "스시텐").
			Return(stored, nil).Once()

		body, _ := json.Marshal(castDTO)
		req, _ := http.NewRequest(http.MethodPost, "/api/votes", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, true, response["success"])

		vote := response["vote"].(map[string]interface{})
		assert.Equal(t, "vote-1", vote["id"])
		mockService.AssertExpectations(t)
	})

	t.Run("ValidationError", func(t *testing.T) {
		mockService := new(MockVoteService)
		r := setupVoteRouter(mockService, true)

		// restaurant_name is required
		body, _ := json.Marshal(dto.CastVoteDTO{RestaurantID: testRestaurantID})
		req, _ := http.NewRequest(http.MethodPost, "/api/votes", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CastVote")
	})

	t.Run("UnknownRestaurant", func(t *testing.T) {
		mockService := new(MockVoteService)
		r := setupVoteRouter(mockService, true)

		mockService.On("CastVote", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("restaurant not found")).Once()

		body, _ := json.Marshal(castDTO)
		req, _ := http.NewRequest(http.MethodPost, "/api/votes", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("StorageError", func(t *testing.T) {
		mockService := new(MockVoteService)
		r := setupVoteRouter(mockService, true)

		mockService.On("CastVote", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset")).Once()

		body, _ := json.Marshal(castDTO)
		req, _ := http.NewRequest(http.MethodPost, "/api/votes", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		// The body must invite a retry rather than leak the storage error
		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Contains(t, response["error"], "retry")
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		mockService := new(MockVoteService)
		r := setupVoteRouter(mockService, false)

		body, _ := json.Marshal(castDTO)
		req, _ := http.NewRequest(http.MethodPost, "/api/votes", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "CastVote")
	})
}

func TestVoteHandler_Retract(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockVoteService)
		r := setupVoteRouter(mockService, true)

		mockService.On("RetractVote", mock.Anything, "test-user-id").Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/votes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		mockService := new(MockVoteService)
		r := setupVoteRouter(mockService, false)

		req, _ := http.NewRequest(http.MethodDelete, "/api/votes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
