package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func fareCommand() *cli.Command {
	return &cli.Command{
		Name:      "fare",
		Usage:     "Calculate the fare price for adults and children between stops",
		ArgsUsage: "<begin stop> <end stop>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "adults",
				Aliases: []string{"a"},
				Value:   0,
				Usage:   "Number of adults",
			},
			&cli.IntFlag{
				Name:    "children",
				Aliases: []string{"c"},
				Value:   0,
				Usage:   "Number of children",
			},
			formatFlag(),
		},
		Action: func(c *cli.Context) error {
			format, err := outputFormat(c)
			if err != nil {
				return err
			}

			begin := c.Args().Get(0)
			end := c.Args().Get(1)
			aggregator := Aggregator(c)

			quote, err := aggregator.CalculateFare(begin, end, c.Int("adults"), c.Int("children"))
			if err != nil {
				return exitError(err, begin)
			}

			if format == formatJSON {
				return writeJSON(c.App.Writer, quote)
			}

			from, _, err := aggregator.Stop(begin)
			if err != nil {
				return exitError(err, begin)
			}
			to, _, err := aggregator.Stop(end)
			if err != nil {
				return exitError(err, end)
			}

			fmt.Fprintf(c.App.Writer, "From: %s\n", from.DisplayName)
			fmt.Fprintf(c.App.Writer, "To: %s\n", to.DisplayName)
			fmt.Fprintf(c.App.Writer, "Adults: %d\n", quote.Adults)
			fmt.Fprintf(c.App.Writer, "Children: %d\n", quote.Children)
			fmt.Fprintf(c.App.Writer, "Fare peak: %s\n", quote.FarePeak)
			fmt.Fprintf(c.App.Writer, "Fare offpeak: %s\n", quote.FareOffPeak)
			fmt.Fprintf(c.App.Writer, "Zones travelled: %s\n", quote.ZonesTravelled)

			return nil
		},
	}
}
