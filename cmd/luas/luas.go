package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/luas/pkg/api"
	"github.com/travigo/luas/pkg/commands"
	"github.com/travigo/luas/pkg/config"
	"github.com/travigo/luas/pkg/dataaggregator"
	"github.com/travigo/luas/pkg/util"
	"github.com/urfave/cli/v2"
)

// setupLogging reads LUAS_LOG_FORMAT and LUAS_DEBUG from env, which includes
// values from .env, so both switches can live there alongside the config ones.
func setupLogging(env map[string]string) {
	if env["LUAS_LOG_FORMAT"] != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if env["LUAS_DEBUG"] == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}

func main() {
	setupLogging(util.GetEnvironmentVariables())

	app := &cli.App{
		Name:        "luas",
		Usage:       "Luas tram stops, forecasts, fares and addresses",
		Description: "Queries the Luas forecasting service and OpenStreetMap Nominatim",
		Version:     config.Version,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML config file replacing the built in defaults",
				EnvVars: []string{"LUAS_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},

		Before: func(c *cli.Context) error {
			if c.Bool("debug") {
				log.Logger = log.Logger.Level(zerolog.DebugLevel)
			}

			cfg, err := config.FromEnvironment(c.String("config"))
			if err != nil {
				return err
			}

			aggregator, err := dataaggregator.Setup(cfg)
			if err != nil {
				return err
			}

			commands.SetAggregator(c.App, aggregator)

			return nil
		},

		Commands: append(commands.RegisterCLI(), api.RegisterCLI()),
	}

	err := app.Run(commands.ReorderArgs(app, os.Args))
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
