package commands

import (
	"errors"
	"fmt"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/travigo/luas/pkg/ctdf"
	"github.com/urfave/cli/v2"
)

// openURL is swapped out in tests.
var openURL = browser.OpenURL

func mapCommand() *cli.Command {
	return &cli.Command{
		Name:      "map",
		Usage:     "Launch OpenStreetMap with the stop location",
		ArgsUsage: "<stop>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "print",
				Aliases: []string{"p"},
				Usage:   "Print the map URL instead of opening a browser",
			},
		},
		Action: func(c *cli.Context) error {
			stop := c.Args().First()

			mapURL, err := Aggregator(c).MapURL(stop)
			if errors.Is(err, ctdf.ErrLineNotFound) {
				return cli.Exit(fmt.Sprintf("Couldn't find luas line for the stop %s", stop), exitNotFound)
			} else if err != nil {
				return exitError(err, stop)
			}

			if c.Bool("print") {
				fmt.Fprintln(c.App.Writer, mapURL)
				return nil
			}

			log.Debug().Str("url", mapURL).Msg("Opening map")

			return openURL(mapURL)
		},
	}
}

func addressCommand() *cli.Command {
	return &cli.Command{
		Name:      "address",
		Usage:     "Display the address of the Luas stop",
		ArgsUsage: "<stop>",
		Flags: []cli.Flag{
			formatFlag(),
		},
		Action: func(c *cli.Context) error {
			format, err := outputFormat(c)
			if err != nil {
				return err
			}

			stop := c.Args().First()

			address, err := Aggregator(c).AddressOf(stop)
			if err != nil {
				return exitError(err, stop)
			}

			if format == formatJSON {
				return writeJSON(c.App.Writer, address)
			}

			for _, field := range address.Fields() {
				fmt.Fprintf(c.App.Writer, "%s: %s\n", field[0], field[1])
			}

			return nil
		},
	}
}
