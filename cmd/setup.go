package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/chartday/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes a starter configuration file from the bundled template.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	r.logger.Info("config file created", "path", configPath)
	r.writePlain("Wrote %s. Edit it to pick a chart strategy.\n", configPath)
	return nil
}
