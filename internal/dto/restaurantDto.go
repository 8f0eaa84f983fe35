package dto

import (
	"biteengine/internal/models"
)

// RestaurantResponse is a catalog entry with its current vote count attached
type RestaurantResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Distance    string   `json:"distance"`
	PriceRange  string   `json:"price_range"`
	Votes       int64    `json:"votes"`
	TotalVoters int      `json:"total_voters"`
	Badges      []string `json:"badges"`
	Dietary     []string `json:"dietary"`
	LocationLat *float64 `json:"location_lat,omitempty"`
	LocationLng *float64 `json:"location_lng,omitempty"`
}

// FromModelToRestaurantResponse converts a Restaurant model plus its tally
func FromModelToRestaurantResponse(restaurant *models.Restaurant, votes int64, totalVoters int) *RestaurantResponse {
	image := restaurant.Image
	if image == "" {
		image = "/placeholder.svg"
	}
	return &RestaurantResponse{
		ID:          restaurant.ID,
		Name:        restaurant.Name,
		Cuisine:     restaurant.Cuisine,
		Image:       image,
		Rating:      restaurant.Rating,
		Distance:    restaurant.Distance,
		PriceRange:  restaurant.PriceRange,
		Votes:       votes,
		TotalVoters: totalVoters,
		Badges:      restaurant.Badges,
		Dietary:     restaurant.Dietary,
		LocationLat: restaurant.LocationLat,
		LocationLng: restaurant.LocationLng,
	}
}

// StatsResponse carries the aggregate view. RestaurantCount and TotalVotes are
// reported separately so callers can tell an empty catalog from a catalog
// nobody has voted on yet.
type StatsResponse struct {
	RestaurantCount int64               `json:"restaurant_count"`
	TotalVotes      int64               `json:"total_votes"`
	Leader          *RestaurantResponse `json:"leader,omitempty"`
}
