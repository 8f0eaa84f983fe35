package handler

import (
	"net/http"

	"biteengine/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// RegisterRoutes registers activity feed routes
func (h *ActivityHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/activities", h.List)
}

// List returns the 10 most recent activity entries, newest first
// GET /api/activities
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.activityService.GetRecent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch activities"})
		return
	}

	c.JSON(http.StatusOK, activities)
}
