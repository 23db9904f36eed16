package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
)

func stopsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stops",
		Usage:     "List luas line stop names and its abbreviations (used in other commands)",
		ArgsUsage: "<line>",
		Flags: []cli.Flag{
			formatFlag(),
		},
		Action: func(c *cli.Context) error {
			format, err := outputFormat(c)
			if err != nil {
				return err
			}

			line := c.Args().First()
			aggregator := Aggregator(c)

			fullName, err := aggregator.LineName(line)
			if err != nil {
				return exitError(err, line)
			}

			stops, err := aggregator.Stops(line)
			if err != nil {
				return exitError(err, line)
			}

			if format == formatJSON {
				return writeJSON(c.App.Writer, stops)
			}

			fmt.Fprintf(c.App.Writer, "\n%s\n\n", fullName)

			w := tabwriter.NewWriter(c.App.Writer, 5, 3, 3, ' ', 0)
			for _, stop := range stops {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", stop.Abbreviation, stop.DisplayName, stop.ParkAndRideDescription(), stop.CycleAndRideDescription())
			}

			return w.Flush()
		},
	}
}
