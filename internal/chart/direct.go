// Direct JSON host implementation of [Source]
//
// Mirrors of the Hot 100 publish one JSON document per chart week, keyed by
// {year}/{date}.json.

package chart

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/desertthunder/chartday/internal/models"
	"github.com/desertthunder/chartday/internal/shared"
)

// DirectSource implements the Source interface against a static JSON host.
type DirectSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewDirectSource creates a new direct JSON source instance.
func NewDirectSource(baseURL string, client *http.Client) *DirectSource {
	if client == nil {
		client = http.DefaultClient
	}

	return &DirectSource{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
	}
}

// Name returns the source name.
func (s *DirectSource) Name() string {
	return "Direct JSON"
}

// Fetch issues a single GET to {base}/{year}/{date}.json. A network error
// or non-2xx status fails the call immediately; there is no retry.
func (s *DirectSource) Fetch(ctx context.Context, date time.Time) ([]models.Entry, error) {
	chartURL := fmt.Sprintf("%s/%d/%s.json", s.baseURL, date.Year(), shared.FormatDate(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, chartURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrChartUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", shared.ErrChartUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrChartUnavailable, err)
	}

	return ExtractEntries(body), nil
}
