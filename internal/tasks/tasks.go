// package tasks implements the playlist build loop.
//
// The core abstraction is PlaylistEngine, which walks the anniversary dates one
// year at a time, fetches each year's chart and assembles the playlist.
// Operations emit progress updates via channels for non-blocking status
// reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/chartday/internal/chart"
	"github.com/desertthunder/chartday/internal/models"
	"github.com/desertthunder/chartday/internal/shared"
	"golang.org/x/time/rate"
)

// PlaylistEngine drives the year-by-year chart fetch loop.
//
// Fetches are strictly sequential: one in-flight request, awaited to
// completion before the next date is processed. A rate limiter paces the
// loop so repeated scrapes of the chart host stay polite.
type PlaylistEngine struct {
	source  chart.Source
	limiter *rate.Limiter
	clock   func() time.Time
}

// NewPlaylistEngine creates an engine around the given chart source.
// ratePerSecond bounds fetch frequency; values <= 0 fall back to one
// request per second.
func NewPlaylistEngine(source chart.Source, ratePerSecond float64) *PlaylistEngine {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}

	return &PlaylistEngine{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), 1),
		clock:   time.Now,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks the loop.
func (e *PlaylistEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// countDates sizes the anniversary sequence so progress updates can carry a
// total.
func countDates(birth, today time.Time) int {
	total := 0
	seq := shared.NewAnniversaries(birth, today)
	for {
		if _, ok := seq.Next(); !ok {
			return total
		}
		total++
	}
}

// Build walks every anniversary date from birth+1 day through today,
// fetches that date's chart and keeps the first count entries per year,
// tagged with the year and search links.
//
// The today snapshot is taken once at the start. Validation failures happen
// before any network call. A fetch failure for any date aborts the whole
// build; a date whose payload yields no entries contributes zero songs and
// the loop continues. An empty playlist is a valid result.
func (e *PlaylistEngine) Build(ctx context.Context, birth time.Time, count int, progress chan<- ProgressUpdate) (*models.Playlist, error) {
	if e.source == nil {
		return nil, fmt.Errorf("%w: chart source not initialized", shared.ErrChartUnavailable)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be a positive integer", shared.ErrInvalidInput)
	}

	today := e.clock()
	if birth.After(today) {
		return nil, fmt.Errorf("%w: birth date is in the future", shared.ErrInvalidInput)
	}

	playlist := &models.Playlist{
		Songs: []models.Song{},
		From:  shared.FormatDate(birth.AddDate(0, 0, 1)),
		To:    shared.FormatDate(today),
	}

	total := countDates(birth, today)
	anniversaries := shared.NewAnniversaries(birth, today)

	for step := 1; ; step++ {
		date, ok := anniversaries.Next()
		if !ok {
			break
		}

		e.sendProgress(progress, fetchChartUpdate(step, total, shared.FormatDate(date)))

		if err := e.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("build canceled: %w", err)
		}

		entries, err := e.source.Fetch(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("chart fetch for %s failed: %w", shared.FormatDate(date), err)
		}

		if len(entries) > count {
			entries = entries[:count]
		}
		for _, entry := range entries {
			playlist.Songs = append(playlist.Songs, models.NewSong(entry, date.Year()))
		}

		e.sendProgress(progress, chartFetchedUpdate(step, total, date.Year(), len(entries)))
	}

	e.sendProgress(progress, buildCompleteUpdate(total, len(playlist.Songs)))
	return playlist, nil
}
