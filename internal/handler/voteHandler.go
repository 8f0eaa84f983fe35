package handler

import (
	"net/http"

	"biteengine/internal/dto"
	"biteengine/internal/middleware"
	"biteengine/internal/service"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteService service.VoteService
}

func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
	}
}

// RegisterRoutes registers vote routes (parent group must be authenticated)
func (h *VoteHandler) RegisterRoutes(router *gin.RouterGroup) {
	votes := router.Group("/votes")
	{
		votes.POST("", h.Cast)      // Cast or change the caller's vote
		votes.DELETE("", h.Retract) // Retract the caller's vote
	}
}

// Cast records the caller's single vote for a restaurant
// POST /api/votes
func (h *VoteHandler) Cast(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CastVoteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vote, err := h.voteService.CastVote(c.Request.Context(), identity, req.RestaurantID, req.RestaurantName)
	if err != nil {
		if err.Error() == "restaurant not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record vote, please retry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "vote": vote})
}

// Retract deletes the caller's vote; succeeds even if none existed
// DELETE /api/votes
func (h *VoteHandler) Retract(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.voteService.RetractVote(c.Request.Context(), identity.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retract vote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
