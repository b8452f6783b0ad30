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
)

// TrimRecord is one production record from the vehicle-trim provider.
type TrimRecord struct {
	ModelName string `json:"model_name"`
	ModelTrim string `json:"model_trim"`
	ModelYear string `json:"model_year"`
}

// trimsResponse wraps the trims array.
type trimsResponse struct {
	Trims []TrimRecord `json:"Trims"`
}

// TrimClient queries the vehicle-trim data provider (live source A). It is
// keyed by make + model and returns every known trim with its model year.
type TrimClient struct {
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	retryConfig RetryConfig
	logger      *slog.Logger
}

// NewTrimClient creates a trim-provider client with a bounded request
// timeout and rate limit.
func NewTrimClient(baseURL string, timeout time.Duration, requestsPerSecond float64, logger *slog.Logger) *TrimClient {
	return &TrimClient{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: timeout},
		limiter:     rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		retryConfig: DefaultRetryConfig(),
		logger:      logger,
	}
}

// GetTrims fetches all trim records for a make/model pair. Empty and
// malformed payloads come back as ErrNoData; transport failures as real
// errors. The caller treats both as a missed tier.
func (c *TrimClient) GetTrims(ctx context.Context, mk, model string) ([]TrimRecord, error) {
	q := url.Values{}
	q.Set("cmd", "getTrims")
	q.Set("make", mk)
	q.Set("model", model)
	reqURL := fmt.Sprintf("%s/?%s", c.baseURL, q.Encode())

	body, err := fetchWithRetry(ctx, c.httpClient, c.limiter, c.retryConfig, reqURL)
	if err != nil {
		return nil, err
	}

	var resp trimsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Debug("malformed trims payload", "make", mk, "model", model, "error", err)
		return nil, ErrNoData
	}

	if len(resp.Trims) == 0 {
		return nil, ErrNoData
	}

	return resp.Trims, nil
}
