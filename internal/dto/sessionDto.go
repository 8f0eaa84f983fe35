package dto

import (
	"time"

	"biteengine/internal/models"
)

// CreateSessionDTO opens a new dinner session
type CreateSessionDTO struct {
	Title       string     `json:"title" binding:"required"`
	BookingTime *time.Time `json:"booking_time,omitempty"`
}

// SessionResponse is a dinner session shaped for display
type SessionResponse struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Status             string     `json:"status"`
	WinnerRestaurantID *string    `json:"winner_restaurant_id,omitempty"`
	FinalizedAt        *time.Time `json:"finalized_at,omitempty"`
	BookingTime        *time.Time `json:"booking_time,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// FromModelToSessionResponse converts a DinnerSession model to SessionResponse DTO
func FromModelToSessionResponse(session *models.DinnerSession) *SessionResponse {
	return &SessionResponse{
		ID:                 session.ID,
		Title:              session.Title,
		Status:             session.Status,
		WinnerRestaurantID: session.WinnerRestaurantID,
		FinalizedAt:        session.FinalizedAt,
		BookingTime:        session.BookingTime,
		CreatedAt:          session.CreatedAt,
	}
}
