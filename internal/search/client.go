package search

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

	"homequery/internal/model"
)

// ErrServiceFailure marks a well-formed response in which the query service
// itself reported failure (success: false). Transport and decoding problems
// are a separate class and are returned as plain wrapped errors.
var ErrServiceFailure = errors.New("query service reported failure")

// Client performs remote calls against the query service. The endpoint is
// injected configuration; the client never hard-codes a service location.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a query service client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Query sends one query with a result-count hint and returns the decoded
// response. The service reports its own failures in-band, so a non-2xx
// status with a decodable body is still classified by the success flag.
func (c *Client) Query(ctx context.Context, query string, topK int) (*model.QueryServiceResponse, error) {
	reqBody, err := json.Marshal(model.QueryServiceRequest{
		Query: query,
		TopK:  topK,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/query", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result model.QueryServiceResponse
	if err := json.Unmarshal(body, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("query service returned status %d: %s", resp.StatusCode, truncate(body, 200))
		}
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.Success {
		return &result, fmt.Errorf("query %q: %w", query, ErrServiceFailure)
	}

	return &result, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
