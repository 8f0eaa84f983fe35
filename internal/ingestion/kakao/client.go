package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://dapi.kakao.com"

	// Kakao restricts restaurant search to the food category and caps the
	// page size; results come back nearest first.
	categoryFood = "FD6"
	maxResults   = 15
	sortOrder    = "distance"

	// Rate limiting: stay well under the Kakao per-app quota
	rateLimit = 5
	rateBurst = 10

	// Retry configuration
	maxRetries   = 3
	initialDelay = 1 * time.Second
	maxDelay     = 16 * time.Second
)

// Client handles Kakao Local API requests with rate limiting and retry logic
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a new Kakao Local API client
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// SearchRestaurants queries the keyword search endpoint around the given
// origin, restricted to food establishments, sorted by distance, capped at 15.
func (c *Client) SearchRestaurants(ctx context.Context, query string, lat, lng float64, radius int) ([]Place, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("kakao api key is not configured")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("category_group_code", categoryFood)
	params.Set("x", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("y", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("sort", sortOrder)
	params.Set("size", strconv.Itoa(maxResults))

	var response SearchResponse
	if err := c.doRequest(ctx, "/v2/local/search/keyword.json", params, &response); err != nil {
		return nil, fmt.Errorf("failed to search restaurants: %w", err)
	}

	return response.Documents, nil
}

// doRequest performs an HTTP request with rate limiting and retry logic
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	fullURL := c.baseURL + endpoint + "?" + params.Encode()

	var lastErr error
	delay := initialDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if attempt < maxRetries {
				log.Printf("[Kakao] Request failed (attempt %d/%d): %v, retrying in %v...",
					attempt+1, maxRetries, err, delay)
				time.Sleep(delay)
				delay = minDuration(delay*2, maxDelay)
				continue
			}
			return fmt.Errorf("request failed after %d attempts: %w", maxRetries, err)
		}

		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(resp.Body)
			resp.Body.Close()

			if shouldRetry(resp.StatusCode) && attempt < maxRetries {
				lastErr = fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(bodyBytes))
				log.Printf("[Kakao] HTTP %d (attempt %d/%d), retrying in %v...",
					resp.StatusCode, attempt+1, maxRetries, delay)
				time.Sleep(delay)
				delay = minDuration(delay*2, maxDelay)
				continue
			}

			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(bodyBytes))
		}

		err = json.NewDecoder(resp.Body).Decode(result)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}

		return nil
	}

	return fmt.Errorf("request failed after %d attempts: %w", maxRetries, lastErr)
}

// shouldRetry determines if an HTTP status code warrants a retry
func shouldRetry(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || // 429
		statusCode >= 500 // 500-504
}

// minDuration returns the smaller of two durations
func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
