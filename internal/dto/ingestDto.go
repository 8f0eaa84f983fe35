package dto

// SearchRestaurantsDTO is the admin ingestion trigger. Latitude and longitude
// are pointers so a missing coordinate is rejected instead of read as zero.
type SearchRestaurantsDTO struct {
	Query  string   `json:"query" binding:"required"`
	Lat    *float64 `json:"lat" binding:"required"`
	Lng    *float64 `json:"lng" binding:"required"`
	Radius *int     `json:"radius,omitempty"`
}

// IngestResponse reports the outcome of one ingestion run. Zero-count results
// (nothing found, everything duplicate) are successes with a message, never
// errors.
type IngestResponse struct {
	Success    bool   `json:"success"`
	Count      int    `json:"count"`
	TotalFound int    `json:"total_found,omitempty"`
	Duplicates int    `json:"duplicates,omitempty"`
	Message    string `json:"message,omitempty"`
}
