package luas

import (
	"fmt"
	"strconv"

	"github.com/jinzhu/copier"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/luas/pkg/ctdf"
)

// Fare asks the service for the fare between two stops. It does not check
// the stops itself; callers validate them first. Missing fare values are
// left empty.
func (c *Client) Fare(from string, to string, adults int, children int) (*ctdf.FareQuote, error) {
	body, err := c.get(map[string]string{
		"action":   "farecalc",
		"from":     from,
		"to":       to,
		"adults":   strconv.Itoa(adults),
		"children": strconv.Itoa(children),
	})
	if err != nil {
		return nil, err
	}

	var document fareDocument
	if err := decodeDocument(body, &document); err != nil {
		return nil, fmt.Errorf("%w: fare calculation: %v", ctdf.ErrUpstreamFormat, err)
	}

	log.Debug().Msgf("Decoded fare %# v", pretty.Formatter(document))

	quote := &ctdf.FareQuote{
		From:     from,
		To:       to,
		Adults:   adults,
		Children: children,
	}
	if err := copier.Copy(quote, &document.Result); err != nil {
		return nil, err
	}

	return quote, nil
}
