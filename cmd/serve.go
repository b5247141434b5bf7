package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/desertthunder/chartday/internal/server"
	"github.com/desertthunder/chartday/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve starts the HTTP server with the playlist API and the bundled front end.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if r.source == nil {
		return fmt.Errorf("%w: serve requires a direct or scrape chart strategy", shared.ErrInvalidConfig)
	}

	cfg := r.config.Server
	if host := cmd.String("host"); host != "" {
		cfg.Host = host
	}
	if port := int(cmd.Int("port")); port != 0 {
		cfg.Port = port
	}

	srv, err := server.NewServer(cfg, r.engine, r.logger)
	if err != nil {
		return err
	}

	r.logger.Info("starting server", "addr", srv.Addr, "source", r.source.Name())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
