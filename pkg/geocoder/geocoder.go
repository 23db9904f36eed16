package geocoder

import (
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/luas/pkg/ctdf"
	resty "gopkg.in/resty.v1"
)

const zoomLevel = "18"

// Client reverse geocodes coordinates with a Nominatim compatible service.
type Client struct {
	Endpoint string

	http *resty.Client
}

func NewClient(endpoint string, timeout time.Duration, userAgent string) *Client {
	httpClient := resty.New()
	httpClient.SetLogger(log.Logger)

	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}
	if userAgent != "" {
		httpClient.SetHeader("User-Agent", userAgent)
	}

	return &Client{
		Endpoint: strings.TrimSuffix(endpoint, "/"),
		http:     httpClient,
	}
}

// Reverse resolves the address at the coordinates. When the service answers
// with an error instead of address parts a *ctdf.LocationNotFoundError is
// returned.
func (c *Client) Reverse(latitude string, longitude string) (*ctdf.Address, error) {
	response, err := c.http.R().
		SetQueryParams(map[string]string{
			"format":         "xml",
			"lat":            latitude,
			"lon":            longitude,
			"zoom":           zoomLevel,
			"addressdetails": "1",
		}).
		Get(c.Endpoint + "/reverse")
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("lat", latitude).
		Str("lon", longitude).
		Int("status", response.StatusCode()).
		Str("latency", response.Time().String()).
		Msg("Reverse geocode request")

	document, err := parseReverseGeocode(response.Body())
	if err != nil {
		return nil, err
	}

	log.Debug().Msgf("Decoded reverse geocode %# v", pretty.Formatter(document))

	if document.Error != nil {
		log.Debug().Str("error", *document.Error).Msg("Geocoder could not resolve location")
		return nil, &ctdf.LocationNotFoundError{Latitude: latitude, Longitude: longitude}
	}

	address := &ctdf.Address{}
	if err := copier.Copy(address, &document.AddressParts); err != nil {
		return nil, err
	}
	address.FullAddress = strings.TrimSpace(document.Result.FullAddress)

	return address, nil
}
