package handler

import (
	"net/http"

	"biteengine/internal/config"
	"biteengine/internal/dto"
	"biteengine/internal/ingestion/kakao"
	"biteengine/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the admin-only operations: catalog ingestion and
// dinner-session management.
type AdminHandler struct {
	importer       *kakao.Importer
	sessionService service.SessionService
	cfg            *config.Config
}

func NewAdminHandler(importer *kakao.Importer, sessionService service.SessionService, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		importer:       importer,
		sessionService: sessionService,
		cfg:            cfg,
	}
}

// RegisterRoutes registers admin routes (parent group must enforce admin role)
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/search-restaurants", h.SearchRestaurants)
	router.POST("/sessions", h.CreateSession)
	router.POST("/sessions/:id/finalize", h.FinalizeSession)
}

// SearchRestaurants runs the ingestion pipeline for one search query
// POST /api/admin/search-restaurants
func (h *AdminHandler) SearchRestaurants(c *gin.Context) {
	var req dto.SearchRestaurantsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query, lat and lng are required"})
		return
	}

	radius := h.cfg.SearchRadius
	if req.Radius != nil && *req.Radius > 0 {
		radius = *req.Radius
	}

	result, err := h.importer.SearchAndImport(c.Request.Context(), req.Query, *req.Lat, *req.Lng, radius)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "failed to search restaurants",
			"message": err.Error(),
		})
		return
	}

	response := dto.IngestResponse{
		Success:    true,
		Count:      result.Inserted,
		TotalFound: result.TotalFound,
		Duplicates: result.Duplicates,
	}
	switch result.Outcome {
	case kakao.OutcomeNoResults:
		response.Message = "no restaurants found for this search"
	case kakao.OutcomeAllDuplicates:
		response.Message = "all found restaurants are already registered"
	}

	c.JSON(http.StatusOK, response)
}

// CreateSession opens a new dinner session
// POST /api/admin/sessions
func (h *AdminHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.Create(c.Request.Context(), req.Title, req.BookingTime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// FinalizeSession stamps the current leading restaurant as the winner
// POST /api/admin/sessions/:id/finalize
func (h *AdminHandler) FinalizeSession(c *gin.Context) {
	session, err := h.sessionService.Finalize(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err.Error() {
		case "session not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "session already finalized", "no restaurants to finalize":
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to finalize session"})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}
