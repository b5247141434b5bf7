// package chart defines interface Source for resolving a date to Hot 100
// chart entries
//
// Direct JSON host, Billboard scrape (via proxy)
package chart

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/desertthunder/chartday/internal/models"
	"github.com/desertthunder/chartday/internal/shared"
)

// Source defines the interface for chart providers. A Source resolves one
// anniversary date to that week's normalized chart entries.
type Source interface {
	// Fetch retrieves and extracts the chart for the given date.
	// Transport failures return an error; unrecognized payload shapes do
	// not - they yield zero entries.
	Fetch(ctx context.Context, date time.Time) ([]models.Entry, error)

	// Name returns the name of the source (e.g. "Direct JSON")
	Name() string
}

// NewSource builds the chart Source selected by the configuration. The
// strategy is resolved once at startup, never per request.
//
// The "backend" strategy is not a Source: it delegates the whole build to a
// running server and is wired at the CLI layer via [BackendClient].
func NewSource(cfg shared.ChartConfig, client *http.Client) (Source, error) {
	switch cfg.Strategy {
	case "direct":
		return NewDirectSource(cfg.JSONHost, client), nil
	case "scrape":
		return NewScrapeSource(cfg.ProxyURL, cfg.ChartHost, client), nil
	default:
		return nil, fmt.Errorf("%w: unknown chart strategy %q", shared.ErrInvalidConfig, cfg.Strategy)
	}
}
