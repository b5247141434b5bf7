// Backend-delegated build client
//
// Talks to a running chartday server, which performs the full per-date loop
// itself and returns the finished playlist in one response.

package chart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/desertthunder/chartday/internal/models"
	"github.com/desertthunder/chartday/internal/shared"
)

// BackendClient delegates a playlist build to the HTTP backend.
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBackendClient creates a client for the given server base URL.
func NewBackendClient(baseURL string, client *http.Client) *BackendClient {
	if client == nil {
		client = http.DefaultClient
	}

	return &BackendClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
	}
}

// Name returns the client name.
func (c *BackendClient) Name() string {
	return "Backend"
}

// Build issues a single GET to /api/playlist and decodes the complete
// playlist. A 400 surfaces the server's validation message; any other
// failure maps to the generic chart transport error.
func (c *BackendClient) Build(ctx context.Context, birth time.Time, count int) (*models.Playlist, error) {
	buildURL := fmt.Sprintf("%s/api/playlist?birth=%s&count=%d", c.baseURL, shared.FormatDate(birth), count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrChartUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			if resp.StatusCode == http.StatusBadRequest {
				return nil, fmt.Errorf("%w: %s", shared.ErrInvalidInput, errResp.Error)
			}
			return nil, fmt.Errorf("%w: %s", shared.ErrChartUnavailable, errResp.Error)
		}
		return nil, fmt.Errorf("%w: status %d", shared.ErrChartUnavailable, resp.StatusCode)
	}

	var playlist models.Playlist
	if err := json.NewDecoder(resp.Body).Decode(&playlist); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &playlist, nil
}
