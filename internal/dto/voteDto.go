package dto

import (
	"time"

	"biteengine/internal/models"
)

// CastVoteDTO is the vote-write request body. The caller supplies the
// restaurant's display name so the activity entry can denormalize it.
type CastVoteDTO struct {
	RestaurantID   string `json:"restaurant_id" binding:"required,uuid"`
	RestaurantName string `json:"restaurant_name" binding:"required"`
}

// VoteResponse is the stored vote returned on a successful cast
type VoteResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserAvatar   string    `json:"user_avatar,omitempty"`
	RestaurantID string    `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromModelToVoteResponse converts a Vote model to VoteResponse DTO
func FromModelToVoteResponse(vote *models.Vote) *VoteResponse {
	return &VoteResponse{
		ID:           vote.ID,
		UserID:       vote.UserID,
		UserName:     vote.UserName,
		UserAvatar:   vote.UserAvatar,
		RestaurantID: vote.RestaurantID,
		CreatedAt:    vote.CreatedAt,
	}
}
