package client

// HTTP client for the bite-engine API, used by all CLI commands.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Request/response structures

type LoginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type UserInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type RestaurantResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine"`
	Rating      float64  `json:"rating"`
	Distance    string   `json:"distance"`
	PriceRange  string   `json:"price_range"`
	Votes       int64    `json:"votes"`
	TotalVoters int      `json:"total_voters"`
	Badges      []string `json:"badges"`
	Dietary     []string `json:"dietary"`
}

type StatsResponse struct {
	RestaurantCount int64               `json:"restaurant_count"`
	TotalVotes      int64               `json:"total_votes"`
	Leader          *RestaurantResponse `json:"leader,omitempty"`
}

type CastVoteRequest struct {
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
}

type ActivityResponse struct {
	ID         string    `json:"id"`
	User       string    `json:"user"`
	Action     string    `json:"action"`
	Restaurant string    `json:"restaurant"`
	Timestamp  time.Time `json:"timestamp"`
}

type SearchRestaurantsRequest struct {
	Query  string  `json:"query"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Radius int     `json:"radius,omitempty"`
}

type IngestResponse struct {
	Success    bool   `json:"success"`
	Count      int    `json:"count"`
	TotalFound int    `json:"total_found,omitempty"`
	Duplicates int    `json:"duplicates,omitempty"`
	Message    string `json:"message,omitempty"`
}

// API methods

func (c *HTTPClient) Login(email, name string) (*LoginResponse, error) {
	var response LoginResponse
	err := c.do(http.MethodPost, "/api/auth/login", LoginRequest{Email: email, Name: name}, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *HTTPClient) GetRestaurants() ([]RestaurantResponse, error) {
	var restaurants []RestaurantResponse
	if err := c.do(http.MethodGet, "/api/restaurants", nil, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *HTTPClient) GetStats() (*StatsResponse, error) {
	var stats StatsResponse
	if err := c.do(http.MethodGet, "/api/restaurants/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) CastVote(restaurantID, restaurantName string) error {
	return c.do(http.MethodPost, "/api/votes", CastVoteRequest{
		RestaurantID:   restaurantID,
		RestaurantName: restaurantName,
	}, nil)
}

func (c *HTTPClient) RetractVote() error {
	return c.do(http.MethodDelete, "/api/votes", nil, nil)
}

func (c *HTTPClient) GetActivities() ([]ActivityResponse, error) {
	var activities []ActivityResponse
	if err := c.do(http.MethodGet, "/api/activities", nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (c *HTTPClient) SearchRestaurants(req SearchRestaurantsRequest) (*IngestResponse, error) {
	var response IngestResponse
	if err := c.do(http.MethodPost, "/api/admin/search-restaurants", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *HTTPClient) do(method, path string, body, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s (HTTP %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("request failed with HTTP %d", resp.StatusCode)
	}

	if result == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(result)
}
