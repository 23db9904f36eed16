package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/luas/pkg/commands"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the Luas lookups over HTTP",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					listen := c.String("listen")
					log.Info().Str("listen", listen).Msg("Starting web API")

					return SetupServer(listen, commands.Aggregator(c))
				},
			},
		},
	}
}
