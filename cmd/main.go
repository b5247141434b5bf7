package main

import (
	"context"
	"os"

	"github.com/desertthunder/chartday/internal/chart"
	"github.com/desertthunder/chartday/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config.toml, using defaults", "error", err)
		}
	}

	var source chart.Source
	if config.Chart.Strategy != "backend" {
		if src, err := chart.NewSource(config.Chart, nil); err == nil {
			source = src
		} else {
			logger.Warn("chart source not configured", "strategy", config.Chart.Strategy, "error", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Source: source,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "chartday",
		Usage:    "Build a playlist from the Hot 100 chart of every birthday you have had",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
