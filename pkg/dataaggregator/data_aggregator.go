package dataaggregator

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/luas/pkg/catalog"
	"github.com/travigo/luas/pkg/config"
	"github.com/travigo/luas/pkg/ctdf"
	"github.com/travigo/luas/pkg/geocoder"
	"github.com/travigo/luas/pkg/luas"
	"github.com/travigo/luas/pkg/resolver"
)

// Aggregator is the single entry point the CLI and web API use for lookups.
type Aggregator struct {
	Catalog  *catalog.Catalog
	Resolver *resolver.Resolver

	forecast  ForecastSource
	addresses AddressSource
}

func New(networkCatalog *catalog.Catalog, forecast ForecastSource, addresses AddressSource) *Aggregator {
	return &Aggregator{
		Catalog:  networkCatalog,
		Resolver: resolver.New(networkCatalog, forecast),

		forecast:  forecast,
		addresses: addresses,
	}
}

func Setup(cfg *config.Config) (*Aggregator, error) {
	networkCatalog, err := catalog.New(cfg.Lines)
	if err != nil {
		return nil, err
	}

	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}

	forecast := luas.NewClient(cfg.Endpoints.Forecast, networkCatalog, timeout, cfg.UserAgent)
	addresses := geocoder.NewClient(cfg.Endpoints.Geocoder, timeout, cfg.UserAgent)

	log.Debug().
		Str("forecast", cfg.Endpoints.Forecast).
		Str("geocoder", cfg.Endpoints.Geocoder).
		Str("timeout", timeout.String()).
		Msg("Data aggregator setup")

	return New(networkCatalog, forecast, addresses), nil
}

func (a *Aggregator) Lines() []ctdf.Line {
	return a.Catalog.Lines()
}

func (a *Aggregator) LineName(shortID string) (string, error) {
	return a.Catalog.FullNameOf(shortID)
}

func (a *Aggregator) Stops(shortID string) ([]*ctdf.Stop, error) {
	return a.forecast.ListStops(shortID)
}

// Stop finds a stop on any line, returning the line's short id alongside it.
func (a *Aggregator) Stop(abbreviation string) (*ctdf.Stop, string, error) {
	return a.Resolver.FindStop(abbreviation)
}

func (a *Aggregator) MapURL(abbreviation string) (string, error) {
	stop, _, err := a.Resolver.FindStop(abbreviation)
	if err != nil {
		return "", err
	}

	return stop.MapURL(), nil
}

func (a *Aggregator) Status(abbreviation string) (string, error) {
	return a.forecast.OperationalStatus(abbreviation)
}

func (a *Aggregator) Timetable(abbreviation string) (ctdf.Timetable, error) {
	return a.forecast.Timetable(abbreviation)
}

// CalculateFare checks the passenger counts, that both stops exist and that
// they share a line, in that order, before asking the service for the fare.
func (a *Aggregator) CalculateFare(begin string, end string, adults int, children int) (*ctdf.FareQuote, error) {
	if adults < 0 {
		return nil, &ctdf.InvalidArgumentError{Argument: "adults", Value: adults}
	}
	if children < 0 {
		return nil, &ctdf.InvalidArgumentError{Argument: "children", Value: children}
	}

	for _, stop := range []string{begin, end} {
		valid, err := a.Resolver.StopIsValid(stop)
		if err != nil {
			return nil, err
		}
		if !valid {
			return nil, &ctdf.StopNotFoundError{Stop: stop}
		}
	}

	shared, err := a.Resolver.StopsShareLine(begin, end)
	if err != nil {
		return nil, err
	}
	if !shared {
		return nil, &ctdf.StopsNotOnSameLineError{FirstStop: begin, SecondStop: end}
	}

	return a.forecast.Fare(begin, end, adults, children)
}

// AddressOf reverse geocodes the coordinates of a stop.
func (a *Aggregator) AddressOf(abbreviation string) (*ctdf.Address, error) {
	stop, line, err := a.Resolver.FindStop(abbreviation)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("stop", stop.Abbreviation).Str("line", line).Msg("Looking up stop address")

	return a.addresses.Reverse(stop.Latitude, stop.Longitude)
}
