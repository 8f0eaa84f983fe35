package handler

import (
	"net/http"

	"biteengine/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService service.SessionService
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// RegisterRoutes registers session read routes
func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/sessions", h.List)
}

// List returns all dinner sessions, newest first
// GET /api/sessions
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sessions"})
		return
	}

	c.JSON(http.StatusOK, sessions)
}
