package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/apiarylab/clientgen/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "clientgen",
		Usage:   `Generate client-library source code from an API discovery document.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to a clientgen config file",
				Destination: &ctrl.Flags.Config,
			},
			&cli.StringFlag{
				Name:        "discovery",
				Usage:       "path to the API discovery document",
				Destination: &ctrl.Flags.Discovery,
			},
			&cli.StringFlag{
				Name:        "language",
				Usage:       "target language (see the languages command)",
				Destination: &ctrl.Flags.Language,
			},
			&cli.StringFlag{
				Name:        "output",
				Usage:       "output directory for generated sources",
				Destination: &ctrl.Flags.Output,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate a client library from a discovery document",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Generate(ctx)
				},
			},
			{
				Name:  "dev",
				Usage: "Watch the discovery document and regenerate on change",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Dev(ctx)
				},
			},
			{
				Name:  "languages",
				Usage: "List the supported target languages",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Languages(ctx)
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run clientgen")
	}
}
