package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"plotmark/internal/config"
	"plotmark/internal/logging"
	"plotmark/internal/tui"
)

// Populated at build-time via -ldflags.
var version = "dev"

func build() string {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				return mv
			}
		}
	}
	return version
}

type flags struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
}

func main() {
	ctx := context.Background()

	var (
		f         flags
		cfg       *config.Config
		logCloser func()
	)

	app := &cli.Command{
		Name:      "plotmark",
		Usage:     "Plot data in the terminal and measure it with draggable marker lines",
		UsageText: "plotmark [global options] [file]",
		Description: `plotmark draws CSV, JSON or whitespace separated x/y data as braille charts.

Marker lines can be dragged with the mouse, nudged from the keyboard and
linked so that they move together across panels.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("PLOTMARK_CONFIG"),
				Destination: &f.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error)",
				Sources:     cli.EnvVars("PLOTMARK_LOG_LEVEL"),
				Value:       "info",
				Destination: &f.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (logging is off without one)",
				Sources:     cli.EnvVars("PLOTMARK_LOG_FILE"),
				Destination: &f.LogFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logging.New(f.LogLevel, f.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err = config.Load(f.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Check the config file and exit",
				UsageText: "plotmark validate",
				Action: func(ctx context.Context, c *cli.Command) error {
					path := f.ConfigPath
					if path == "" {
						path = "(defaults)"
					}
					fmt.Fprintf(c.Root().Writer, "%s: ok\n", path)
					return nil
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 1 {
				return fmt.Errorf("expected at most one file, got %d", c.Args().Len())
			}
			ui := logging.Component("tui")

			var m tea.Model
			if path := c.Args().First(); path != "" {
				m = tui.NewWithPath(cfg, ui, path)
			} else {
				m = tui.New(cfg, ui)
			}

			log.Info().Str("version", build()).Msg("starting")
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run ui: %w", err)
			}
			return nil
		},
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
