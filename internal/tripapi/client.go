// README: HTTP client for the recommendation API (POST /recommendations).
package tripapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tripbud/internal/types"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8000"

var (
	// ErrUnexpectedStatus is returned for any non-2xx answer.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrInvalidResponse is returned when a 2xx body is not a recommendation response.
	ErrInvalidResponse = errors.New("invalid response body")
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// Client calls the recommendation API. It performs exactly one request per
// call and never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Recommend posts req to {baseURL}/recommendations.
func (c *Client) Recommend(ctx context.Context, req types.TripRequest) (*types.TripRecommendationResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("tripapi: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommendations", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("tripapi: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tripapi: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("tripapi: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("tripapi: %w %d: %s", ErrUnexpectedStatus, resp.StatusCode, truncate(raw, 200))
	}

	if err := validateResponse(raw); err != nil {
		return nil, fmt.Errorf("tripapi: %w", err)
	}
	var out types.TripRecommendationResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("tripapi: unmarshal response: %w", err)
	}
	return &out, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
