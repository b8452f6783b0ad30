package model

import "time"

// ValidateVehicleRequest is the inbound payload for vehicle validation.
// Year bounds are checked by the engine against the resolved range, not here.
type ValidateVehicleRequest struct {
	Brand   string `json:"brand" validate:"required,max=64"`
	Model   string `json:"model" validate:"max=64"`
	Year    int    `json:"year" validate:"required"`
	Mileage int    `json:"mileage,omitempty" validate:"omitempty,gte=0,lte=2000000"`
	Symptom string `json:"symptom,omitempty" validate:"max=2000"`
}

// YearRangeResponse wraps a standalone year-range lookup.
type YearRangeResponse struct {
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	YearRange YearRange `json:"year_range"`
}

// CacheClearResponse reports how many cache entries were dropped.
type CacheClearResponse struct {
	EntriesCleared int `json:"entries_cleared"`
}

// BrandInfo is one entry of the brand listing used by UI pickers.
type BrandInfo struct {
	Token     string `json:"token"`
	DisplayEN string `json:"display_en"`
	DisplayAR string `json:"display_ar"`
}

// BrandsResponse wraps the brand listing.
type BrandsResponse struct {
	Brands []BrandInfo `json:"brands"`
	Total  int         `json:"total"`
}

// HealthResponse reports service status for the health probe.
type HealthResponse struct {
	Status       string    `json:"status"`
	Brands       int       `json:"brands"`
	Models       int       `json:"models"`
	CacheEntries int       `json:"cache_entries"`
	Timestamp    time.Time `json:"timestamp"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
