package luas

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/luas/pkg/catalog"
	resty "gopkg.in/resty.v1"
)

// Client talks to the Luas forecasting XML service. Each call is a single
// synchronous request with no caching or retries.
type Client struct {
	Endpoint string
	Catalog  *catalog.Catalog

	http *resty.Client
}

func NewClient(endpoint string, networkCatalog *catalog.Catalog, timeout time.Duration, userAgent string) *Client {
	httpClient := resty.New()
	httpClient.SetLogger(log.Logger)

	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}
	if userAgent != "" {
		httpClient.SetHeader("User-Agent", userAgent)
	}

	return &Client{
		Endpoint: endpoint,
		Catalog:  networkCatalog,
		http:     httpClient,
	}
}

// get issues one request against the endpoint. Transport errors are returned
// untouched so callers can tell timeouts and refused connections apart.
func (c *Client) get(params map[string]string) ([]byte, error) {
	params["encrypt"] = "false"

	response, err := c.http.R().SetQueryParams(params).Get(c.Endpoint)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("action", params["action"]).
		Int("status", response.StatusCode()).
		Str("latency", response.Time().String()).
		Msg("Luas forecast request")

	return response.Body(), nil
}
