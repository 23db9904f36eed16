package commands

import (
	"errors"
	"fmt"

	"github.com/travigo/luas/pkg/ctdf"
	"github.com/urfave/cli/v2"
)

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Check if the Luas stop is operational",
		ArgsUsage: "<stop>",
		Action: func(c *cli.Context) error {
			stop := c.Args().First()

			message, err := Aggregator(c).Status(stop)

			var stopNotFound *ctdf.StopNotFoundError
			if errors.As(err, &stopNotFound) {
				return cli.Exit(fmt.Sprintf("The stop %s doesn't exist", stop), exitNotFound)
			} else if err != nil {
				return exitError(err, stop)
			}

			fmt.Fprintln(c.App.Writer, message)

			return nil
		},
	}
}

func timeCommand() *cli.Command {
	return &cli.Command{
		Name:      "time",
		Usage:     "Display the inbound/outbound timetable of a Luas stop",
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

			timetable, err := Aggregator(c).Timetable(stop)
			if err != nil {
				return exitError(err, stop)
			}

			if format == formatJSON {
				return writeJSON(c.App.Writer, timetable)
			}

			for _, direction := range timetable.Directions() {
				fmt.Fprintln(c.App.Writer, capitalise(direction))

				for _, tram := range timetable[direction] {
					fmt.Fprintf(c.App.Writer, "\tDestination: %s - Due: %s\n", tram.Destination, tram.DueMinutes)
				}
			}

			return nil
		},
	}
}
