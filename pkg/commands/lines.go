package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func linesCommand() *cli.Command {
	return &cli.Command{
		Name:  "lines",
		Usage: "List the Luas lines and their short ids (used in other commands)",
		Flags: []cli.Flag{
			formatFlag(),
		},
		Action: func(c *cli.Context) error {
			format, err := outputFormat(c)
			if err != nil {
				return err
			}

			lines := Aggregator(c).Lines()

			if format == formatJSON {
				return writeJSON(c.App.Writer, lines)
			}

			for _, line := range lines {
				fmt.Fprintf(c.App.Writer, "%s\t%s\n", line.ShortID, line.FullName)
			}

			return nil
		},
	}
}
