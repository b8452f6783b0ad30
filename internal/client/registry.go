package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"sayyara-vehicle-api/internal/matching"
)

// registryResponse is the vehicle-registry payload for a make + model-year
// query.
type registryResponse struct {
	Count   int `json:"Count"`
	Results []struct {
		ModelName string `json:"Model_Name"`
	} `json:"Results"`
}

// RegistryClient queries the vehicle-registry provider (live source B). It
// answers per-year membership questions: which models of a make were
// produced in a given year.
type RegistryClient struct {
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	retryConfig RetryConfig
	logger      *slog.Logger
}

// NewRegistryClient creates a registry client with a bounded request timeout
// and rate limit.
func NewRegistryClient(baseURL string, timeout time.Duration, requestsPerSecond float64, logger *slog.Logger) *RegistryClient {
	return &RegistryClient{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: timeout},
		limiter:     rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		retryConfig: DefaultRetryConfig(),
		logger:      logger,
	}
}

// ModelsForYear lists the model names a make produced in a given year.
// An empty result set is not an error here; the year simply has no records.
func (c *RegistryClient) ModelsForYear(ctx context.Context, mk string, year int) ([]string, error) {
	reqURL := fmt.Sprintf("%s/vehicles/GetModelsForMakeYear/make/%s/modelyear/%d?format=json",
		c.baseURL, url.PathEscape(mk), year)

	body, err := fetchWithRetry(ctx, c.httpClient, c.limiter, c.retryConfig, reqURL)
	if err != nil {
		return nil, err
	}

	var resp registryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Debug("malformed registry payload", "make", mk, "year", year, "error", err)
		return nil, ErrNoData
	}

	names := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		if r.ModelName != "" {
			names = append(names, r.ModelName)
		}
	}
	return names, nil
}

// HasModel reports whether the registry shows the model as produced in the
// given year. Model names are compared after normalization.
func (c *RegistryClient) HasModel(ctx context.Context, mk, model string, year int) (bool, error) {
	names, err := c.ModelsForYear(ctx, mk, year)
	if err != nil {
		return false, err
	}

	want := matching.Normalize(model)
	for _, name := range names {
		if matching.Normalize(name) == want {
			return true, nil
		}
	}
	return false, nil
}
