package dto

import (
	"time"

	"biteengine/internal/models"
)

// ActivityResponse is one feed entry shaped for display
type ActivityResponse struct {
	ID         string    `json:"id"`
	User       string    `json:"user"`
	Avatar     string    `json:"avatar"`
	Action     string    `json:"action"`
	Restaurant string    `json:"restaurant"`
	Timestamp  time.Time `json:"timestamp"`
}

// FromModelToActivityResponse converts a VoteActivity model to ActivityResponse DTO
func FromModelToActivityResponse(activity *models.VoteActivity) *ActivityResponse {
	avatar := activity.UserAvatar
	if avatar == "" {
		avatar = "/placeholder.svg"
	}
	return &ActivityResponse{
		ID:         activity.ID,
		User:       activity.UserName,
		Avatar:     avatar,
		Action:     activity.Action,
		Restaurant: activity.RestaurantName,
		Timestamp:  activity.CreatedAt,
	}
}
