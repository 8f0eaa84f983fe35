package handler

import (
	"net/http"

	"biteengine/internal/service"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	restaurantService service.RestaurantService
}

func NewRestaurantHandler(restaurantService service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
	}
}

// RegisterRoutes registers restaurant-related routes
func (h *RestaurantHandler) RegisterRoutes(router *gin.RouterGroup) {
	restaurants := router.Group("/restaurants")
	{
		restaurants.GET("", h.List)            // Catalog with vote counts
		restaurants.GET("/stats", h.GetStats)  // Totals and current leader
	}
}

// List returns every catalog entry with its current vote count
// GET /api/restaurants
func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.restaurantService.ListWithVotes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurants"})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// GetStats returns total votes, restaurant count and the leading restaurant
// GET /api/restaurants/stats
func (h *RestaurantHandler) GetStats(c *gin.Context) {
	stats, err := h.restaurantService.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
