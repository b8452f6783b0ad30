package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ErrNoData marks a source response that is well-formed transport-wise but
// carries no usable records (empty or malformed payload). The resolver
// treats it as "tier produced no data", distinct from transport failure.
var ErrNoData = errors.New("source returned no data")

// RetryConfig defines retry behavior for source requests.
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
}

// DefaultRetryConfig is shared by both live sources.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     2,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     5 * time.Second,
		Multiplier:     2.0,
	}
}

// fetchWithRetry performs a rate-limited GET with bounded retries on 429/5xx.
func fetchWithRetry(ctx context.Context, httpClient *http.Client, limiter *rate.Limiter, cfg RetryConfig, url string) ([]byte, error) {
	backoff := cfg.InitialBackoff

	for attempt := 0; ; attempt++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := httpClient.Do(req)
		if err != nil {
			if attempt < cfg.MaxRetries {
				if sleepErr := sleepCtx(ctx, backoff); sleepErr != nil {
					return nil, sleepErr
				}
				backoff = minDuration(time.Duration(float64(backoff)*cfg.Multiplier), cfg.MaxBackoff)
				continue
			}
			return nil, fmt.Errorf("request failed after %d attempts: %w", attempt+1, err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode == http.StatusOK {
			return body, nil
		}

		// Retry on 429 and server errors
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		if retryable && attempt < cfg.MaxRetries {
			if sleepErr := sleepCtx(ctx, backoff); sleepErr != nil {
				return nil, sleepErr
			}
			backoff = minDuration(time.Duration(float64(backoff)*cfg.Multiplier), cfg.MaxBackoff)
			continue
		}

		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
