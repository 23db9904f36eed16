package dataaggregator

import "github.com/travigo/luas/pkg/ctdf"

// ForecastSource is the tram forecasting service.
type ForecastSource interface {
	ListStops(shortID string) ([]*ctdf.Stop, error)
	OperationalStatus(abbreviation string) (string, error)
	Timetable(abbreviation string) (ctdf.Timetable, error)
	Fare(from string, to string, adults int, children int) (*ctdf.FareQuote, error)
}

// AddressSource turns coordinates into a street address.
type AddressSource interface {
	Reverse(latitude string, longitude string) (*ctdf.Address, error)
}
