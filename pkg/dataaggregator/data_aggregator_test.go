package dataaggregator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/luas/pkg/catalog"
	"github.com/travigo/luas/pkg/config"
	"github.com/travigo/luas/pkg/ctdf"
)

type fakeForecast struct {
	stops     map[string][]*ctdf.Stop
	listErr   error
	listCalls int
	fareCalls int
}

func (f *fakeForecast) ListStops(shortID string) ([]*ctdf.Stop, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}

	return f.stops[shortID], nil
}

func (f *fakeForecast) OperationalStatus(abbreviation string) (string, error) {
	return "Green Line services operating normally", nil
}

func (f *fakeForecast) Timetable(abbreviation string) (ctdf.Timetable, error) {
	return ctdf.Timetable{"inbound": {{Destination: "Broombridge", DueMinutes: "10"}}}, nil
}

func (f *fakeForecast) Fare(from string, to string, adults int, children int) (*ctdf.FareQuote, error) {
	f.fareCalls++

	return &ctdf.FareQuote{
		From:           from,
		To:             to,
		Adults:         adults,
		Children:       children,
		FarePeak:       "7.50",
		FareOffPeak:    "6.90",
		ZonesTravelled: "1",
	}, nil
}

type fakeAddresses struct {
	requested [][2]string
	err       error
}

func (f *fakeAddresses) Reverse(latitude string, longitude string) (*ctdf.Address, error) {
	f.requested = append(f.requested, [2]string{latitude, longitude})
	if f.err != nil {
		return nil, f.err
	}

	return &ctdf.Address{Road: "Ranelagh Road", Postcode: "D06 X2N1", CountryCode: "ie"}, nil
}

func newTestAggregator(t *testing.T) (*Aggregator, *fakeForecast, *fakeAddresses) {
	t.Helper()

	networkCatalog, err := catalog.New([]ctdf.Line{
		{ShortID: "red", FullName: "Luas Red Line"},
		{ShortID: "green", FullName: "Luas Green Line"},
	})
	require.NoError(t, err)

	forecast := &fakeForecast{
		stops: map[string][]*ctdf.Stop{
			"red": {
				{Abbreviation: "CIT", DisplayName: "Citywest Campus", Latitude: "53.28783255", Longitude: "-6.418914583333"},
				{Abbreviation: "JER", DisplayName: "Jobstown", Latitude: "53.2864722222222", Longitude: "-6.41258333333333"},
			},
			"green": {
				{Abbreviation: "RAN", DisplayName: "Ranelagh", Latitude: "53.3262611111111", Longitude: "-6.25634444444444"},
			},
		},
	}
	addresses := &fakeAddresses{}

	return New(networkCatalog, forecast, addresses), forecast, addresses
}

func TestCalculateFare(t *testing.T) {
	aggregator, forecast, _ := newTestAggregator(t)

	quote, err := aggregator.CalculateFare("cit", "jer", 2, 1)
	require.NoError(t, err)

	assert.Equal(t, "7.50", quote.FarePeak)
	assert.Equal(t, 2, quote.Adults)
	assert.Equal(t, 1, quote.Children)
	assert.Equal(t, 1, forecast.fareCalls)
}

func TestCalculateFareNegativeCountsMakeNoRequest(t *testing.T) {
	tests := []struct {
		name     string
		adults   int
		children int
	}{
		{"negative adults", -1, 0},
		{"negative children", 1, -2},
		{"both negative", -3, -3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			aggregator, forecast, _ := newTestAggregator(t)

			_, err := aggregator.CalculateFare("somethingelse", "nothing", tc.adults, tc.children)

			assert.ErrorIs(t, err, ctdf.ErrInvalidArgument)

			var invalidArgument *ctdf.InvalidArgumentError
			require.ErrorAs(t, err, &invalidArgument)
			if tc.adults < 0 {
				assert.Equal(t, "adults", invalidArgument.Argument)
				assert.Equal(t, tc.adults, invalidArgument.Value)
			} else {
				assert.Equal(t, "children", invalidArgument.Argument)
				assert.Equal(t, tc.children, invalidArgument.Value)
			}
			assert.Equal(t, 0, forecast.listCalls)
			assert.Equal(t, 0, forecast.fareCalls)
		})
	}
}

func TestCalculateFarePreconditionOrder(t *testing.T) {
	tests := []struct {
		name         string
		begin        string
		end          string
		expectedStop string
	}{
		{"begin missing", "somethingelse", "jer", "somethingelse"},
		{"end missing", "cit", "nothing", "nothing"},
		{"both missing", "somethingelse", "nothing", "somethingelse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			aggregator, forecast, _ := newTestAggregator(t)

			_, err := aggregator.CalculateFare(tc.begin, tc.end, 1, 0)

			var notFound *ctdf.StopNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tc.expectedStop, notFound.Stop)
			assert.Equal(t, 0, forecast.fareCalls)
		})
	}
}

func TestCalculateFareDifferentLines(t *testing.T) {
	aggregator, forecast, _ := newTestAggregator(t)

	_, err := aggregator.CalculateFare("cit", "ran", 1, 0)

	var notOnSameLine *ctdf.StopsNotOnSameLineError
	require.ErrorAs(t, err, &notOnSameLine)
	assert.Equal(t, "cit", notOnSameLine.FirstStop)
	assert.Equal(t, "ran", notOnSameLine.SecondStop)
	assert.Equal(t, 0, forecast.fareCalls)
}

func TestCalculateFarePropagatesDirectoryErrors(t *testing.T) {
	aggregator, forecast, _ := newTestAggregator(t)
	forecast.listErr = errors.New("dial tcp: connection refused")

	_, err := aggregator.CalculateFare("cit", "jer", 1, 0)

	assert.EqualError(t, err, "dial tcp: connection refused")
}

func TestAddressOf(t *testing.T) {
	aggregator, _, addresses := newTestAggregator(t)

	address, err := aggregator.AddressOf("ran")
	require.NoError(t, err)

	assert.Equal(t, "D06 X2N1", address.Postcode)
	assert.Equal(t, [][2]string{{"53.3262611111111", "-6.25634444444444"}}, addresses.requested)
}

func TestAddressOfUnknownStop(t *testing.T) {
	aggregator, _, addresses := newTestAggregator(t)

	_, err := aggregator.AddressOf("somethingelse")

	assert.ErrorIs(t, err, ctdf.ErrLineNotFound)
	assert.Empty(t, addresses.requested)
}

func TestAddressOfLocationNotFound(t *testing.T) {
	aggregator, _, addresses := newTestAggregator(t)
	locationErr := &ctdf.LocationNotFoundError{Latitude: "53.28783255", Longitude: "-6.418914583333"}
	addresses.err = locationErr

	_, err := aggregator.AddressOf("cit")

	assert.Same(t, locationErr, err)
}

func TestMapURL(t *testing.T) {
	aggregator, _, _ := newTestAggregator(t)

	url, err := aggregator.MapURL("RAN")
	require.NoError(t, err)

	assert.Equal(t, "https://www.openstreetmap.org/?mlat=53.3262611111111&mlon=-6.25634444444444#map=14/53.3262611111111/-6.25634444444444", url)
}

func TestSetup(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	aggregator, err := Setup(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"red", "green"}, aggregator.Catalog.ShortIDs())
}

func TestSetupRejectsBadTimeout(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.RequestTimeout = "soon"

	_, err = Setup(cfg)
	assert.Error(t, err)
}
