package luas

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/luas/pkg/ctdf"
)

// ListStops returns the stops of a line in upstream order. The service only
// offers the whole network listing so it is fetched and filtered by the
// line's full name. A document that does not decode as a stop listing is an
// ErrUpstreamFormat, a valid listing without the line gives an empty slice.
func (c *Client) ListStops(shortID string) ([]*ctdf.Stop, error) {
	lineName, err := c.Catalog.FullNameOf(shortID)
	if err != nil {
		return nil, err
	}

	body, err := c.get(map[string]string{"action": "stops"})
	if err != nil {
		return nil, err
	}

	var document stopsDocument
	if err := decodeDocument(body, &document); err != nil {
		return nil, fmt.Errorf("%w: stops listing: %v", ctdf.ErrUpstreamFormat, err)
	}

	log.Debug().Msgf("Decoded stops listing %# v", pretty.Formatter(document))

	stops := []*ctdf.Stop{}
	for _, line := range document.Lines {
		if line.Name != lineName {
			continue
		}

		for _, record := range line.Stops {
			stop, err := record.toStop()
			if err != nil {
				return nil, err
			}

			stops = append(stops, stop)
		}
	}

	log.Debug().Str("line", shortID).Int("stops", len(stops)).Msg("Listed line stops")

	return stops, nil
}

func (c *Client) FindStop(abbreviation string, shortID string) (*ctdf.Stop, error) {
	stops, err := c.ListStops(shortID)
	if err != nil {
		return nil, err
	}

	stop := ctdf.MatchStop(stops, abbreviation)
	if stop == nil {
		return nil, &ctdf.StopNotFoundError{Stop: abbreviation}
	}

	return stop, nil
}
