package commands

import (
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/travigo/luas/pkg/ctdf"
	"github.com/urfave/cli/v2"
)

const (
	exitNotFound     = 1
	exitConnectivity = 2
	exitFormat       = 3
)

// exitError turns a lookup error into a cli exit error with the message and
// code for its class. subject is the line or stop the command was asked about.
func exitError(err error, subject string) error {
	var stopNotFound *ctdf.StopNotFoundError
	var notOnSameLine *ctdf.StopsNotOnSameLineError
	var invalidArgument *ctdf.InvalidArgumentError
	var locationNotFound *ctdf.LocationNotFoundError
	var urlErr *url.Error
	var netErr net.Error

	log.Debug().Err(err).Str("subject", subject).Msg("Command failed")

	switch {
	case errors.Is(err, ctdf.ErrUnknownLine):
		return cli.Exit(fmt.Sprintf("The line %s doesn't exist", subject), exitNotFound)
	case errors.As(err, &stopNotFound):
		return cli.Exit(fmt.Sprintf("The Luas stop %s doesn't exist.", stopNotFound.Stop), exitNotFound)
	case errors.Is(err, ctdf.ErrLineNotFound):
		return cli.Exit(fmt.Sprintf("The Luas stop %s doesn't exist.", subject), exitNotFound)
	case errors.As(err, &notOnSameLine):
		return cli.Exit(fmt.Sprintf("The Luas stops %s and %s are not on the same line.", notOnSameLine.FirstStop, notOnSameLine.SecondStop), exitNotFound)
	case errors.As(err, &invalidArgument):
		return cli.Exit(fmt.Sprintf("The number of %s can't be negative (got %d).", invalidArgument.Argument, invalidArgument.Value), exitNotFound)
	case errors.Is(err, ctdf.ErrInvalidArgument):
		return cli.Exit(fmt.Sprintf("Invalid argument: %s", err), exitNotFound)
	case errors.As(err, &locationNotFound):
		return cli.Exit(fmt.Sprintf("Address location not found at lat=%s lon=%s", locationNotFound.Latitude, locationNotFound.Longitude), exitConnectivity)
	case errors.As(err, &urlErr):
		return cli.Exit(fmt.Sprintf("Can't connect to %s", hostOf(urlErr.URL)), exitConnectivity)
	case errors.As(err, &netErr):
		return cli.Exit(fmt.Sprintf("Can't connect: %s", netErr), exitConnectivity)
	case errors.Is(err, ctdf.ErrUpstreamFormat):
		return cli.Exit(fmt.Sprintf("Unexpected response from upstream service: %s", err), exitConnectivity)
	}

	return err
}

func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return rawURL
	}

	return fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host)
}
