// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// buildCommand runs a playlist build from the terminal
func buildCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "build",
		Aliases: []string{"b"},
		Usage:   "Build a birthday playlist",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "birth",
				Aliases:  []string{"b"},
				Usage:    "Birth date (YYYY-MM-DD)",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Songs to keep per year (defaults to the configured count)",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: text, markdown, csv or json",
				Value: "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the playlist to a file instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the playlist as JSON (shorthand for --format json)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log at debug level",
			},
		},
		Action: r.Build,
	}
}

// serveCommand starts the HTTP server with the API and the bundled front end
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the playlist API and web front end",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to bind (defaults to the configured host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to bind (defaults to the configured port)",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand writes a starter configuration file
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create a configuration file from the bundled template",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// tuiCommand returns the top-level TUI command for interactive playlist building.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for playlist building",
		Action:  r.TUI,
	}
}
