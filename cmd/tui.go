package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/chartday/internal/shared"
	"github.com/desertthunder/chartday/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for playlist building.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.source == nil {
		return fmt.Errorf("%w: tui requires a direct or scrape chart strategy", shared.ErrInvalidConfig)
	}

	// Redirect logs to file to avoid interfering with TUI rendering.
	// File logs carry debug detail since nothing competes for the terminal.
	fileLogger, err := shared.NewFileLogger("./tmp/chartday-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, log.DebugLevel)
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.engine, r.config.Build.Count)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
