// Billboard page scrape implementation of [Source]
//
// The chart page is fetched through a text-extraction proxy so the raw
// markup survives without a browser. A failed attempt is retried once
// through a second, doubly-wrapped proxy URL.

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

// ScrapeSource implements the Source interface by scraping the canonical
// chart page for a date.
type ScrapeSource struct {
	proxyURL   string
	chartHost  string
	httpClient *http.Client
}

// NewScrapeSource creates a new scrape source. proxyURL is the extraction
// proxy base (scheme included); chartHost is the chart site hostname.
func NewScrapeSource(proxyURL, chartHost string, client *http.Client) *ScrapeSource {
	if client == nil {
		client = http.DefaultClient
	}

	return &ScrapeSource{
		proxyURL:   strings.TrimSuffix(proxyURL, "/"),
		chartHost:  chartHost,
		httpClient: client,
	}
}

// Name returns the source name.
func (s *ScrapeSource) Name() string {
	return "Billboard scrape"
}

// pageURL is the canonical chart page address, without scheme.
func (s *ScrapeSource) pageURL(date time.Time) string {
	return fmt.Sprintf("%s/charts/hot-100/%s", s.chartHost, shared.FormatDate(date))
}

// attemptURLs returns both proxy wrappings in order: the plain wrap, then
// the doubly-wrapped fallback.
func (s *ScrapeSource) attemptURLs(page string) []string {
	proxyHost := strings.TrimPrefix(strings.TrimPrefix(s.proxyURL, "https://"), "http://")
	return []string{
		fmt.Sprintf("%s/http://%s", s.proxyURL, page),
		fmt.Sprintf("%s/http://%s/http://%s", s.proxyURL, proxyHost, page),
	}
}

// Fetch retrieves the chart page, falling back to the second proxy wrap on
// a network error or non-2xx status. When both attempts fail, the last
// error is surfaced.
func (s *ScrapeSource) Fetch(ctx context.Context, date time.Time) ([]models.Entry, error) {
	var lastErr error

	for _, attempt := range s.attemptURLs(s.pageURL(date)) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, attempt, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		return ExtractEntries(body), nil
	}

	return nil, fmt.Errorf("%w: %v", shared.ErrChartUnavailable, lastErr)
}
