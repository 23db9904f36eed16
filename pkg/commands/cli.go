package commands

import (
	"github.com/travigo/luas/pkg/dataaggregator"
	"github.com/urfave/cli/v2"
)

const aggregatorMetadataKey = "aggregator"

// RegisterCLI returns the user facing lookup commands. They expect an
// aggregator to have been attached to the app with SetAggregator.
func RegisterCLI() []*cli.Command {
	return []*cli.Command{
		linesCommand(),
		stopsCommand(),
		statusCommand(),
		mapCommand(),
		addressCommand(),
		timeCommand(),
		fareCommand(),
	}
}

func SetAggregator(app *cli.App, aggregator *dataaggregator.Aggregator) {
	if app.Metadata == nil {
		app.Metadata = map[string]interface{}{}
	}

	app.Metadata[aggregatorMetadataKey] = aggregator
}

func Aggregator(c *cli.Context) *dataaggregator.Aggregator {
	aggregator, _ := c.App.Metadata[aggregatorMetadataKey].(*dataaggregator.Aggregator)

	return aggregator
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   formatText,
		Usage:   "Output format (Valid options: json/text)",
	}
}
