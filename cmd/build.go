package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/chartday/internal/formatter"
	"github.com/desertthunder/chartday/internal/models"
	"github.com/desertthunder/chartday/internal/shared"
	"github.com/desertthunder/chartday/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Build assembles a birthday playlist and prints or writes it.
//
// With the backend strategy the whole build is delegated to a running
// server in a single request; otherwise the local engine fetches charts
// year by year, echoing progress as it goes.
func (r *Runner) Build(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	birth, err := shared.ParseDate(cmd.String("birth"))
	if err != nil {
		return fmt.Errorf("%w: birth must be formatted YYYY-MM-DD", shared.ErrInvalidFlag)
	}

	count := int(cmd.Int("count"))
	if count == 0 {
		count = r.config.Build.Count
	}
	if count < 1 {
		return fmt.Errorf("%w: count must be a positive integer", shared.ErrInvalidFlag)
	}

	format := cmd.String("format")
	if cmd.Bool("json") {
		format = "json"
	}
	r.logger.Debug("building playlist", "birth", shared.FormatDate(birth), "count", count, "format", format)

	var playlist *models.Playlist
	if r.config.Chart.Strategy == "backend" {
		if r.backend == nil {
			return fmt.Errorf("%w: backend strategy requires backend_url", shared.ErrInvalidConfig)
		}

		r.logger.Info("delegating build to backend", "birth", shared.FormatDate(birth), "count", count)
		playlist, err = r.backend.Build(ctx, birth, count)
	} else {
		progressCh := make(chan tasks.ProgressUpdate, 50)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for update := range progressCh {
				switch update.Phase {
				case tasks.FetchChart:
					r.writePlain("  %s\n", update.Message)
				case tasks.ChartFetched:
					r.writePlain("  %s\n", update.Message)
				case tasks.BuildComplete:
					r.writePlain("\n%s\n\n", update.Message)
				}
			}
		}()

		playlist, err = r.engine.Build(ctx, birth, count, progressCh)
		close(progressCh)
		<-done
	}

	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		written, err := formatter.Write(playlist, format, path)
		if err != nil {
			return err
		}
		r.writePlain("Playlist written to %s\n", written)
		return nil
	}

	if format == "json" {
		return r.writeJSON(playlist, true)
	}

	data, err := exportBytes(playlist, format)
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}

// exportBytes renders a playlist for stdout in the named format.
func exportBytes(playlist *models.Playlist, format string) ([]byte, error) {
	switch format {
	case "text", "txt":
		return formatter.ExportToText(playlist)
	case "markdown", "md":
		return formatter.ExportToMarkdown(playlist)
	case "csv":
		return formatter.ExportToCSV(playlist)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", shared.ErrInvalidFlag, format)
	}
}
