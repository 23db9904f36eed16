package luas

import (
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/luas/pkg/ctdf"
)

// forecast fetches the stopInfo document for a stop. Anything that is not a
// stopInfo document means the abbreviation gave nothing usable.
func (c *Client) forecast(abbreviation string) (*stopInfoDocument, error) {
	body, err := c.get(map[string]string{
		"action": "forecast",
		"stop":   abbreviation,
	})
	if err != nil {
		return nil, err
	}

	var document stopInfoDocument
	if err := decodeDocument(body, &document); err != nil {
		log.Debug().Err(err).Str("stop", abbreviation).Msg("Forecast response did not decode")
		return nil, &ctdf.StopNotFoundError{Stop: abbreviation}
	}

	log.Debug().Msgf("Decoded forecast %# v", pretty.Formatter(document))

	return &document, nil
}

func (c *Client) OperationalStatus(abbreviation string) (string, error) {
	document, err := c.forecast(abbreviation)
	if err != nil {
		return "", err
	}

	if document.Message == nil {
		return "", &ctdf.StopNotFoundError{Stop: abbreviation}
	}

	return *document.Message, nil
}

func (c *Client) Timetable(abbreviation string) (ctdf.Timetable, error) {
	document, err := c.forecast(abbreviation)
	if err != nil {
		return nil, err
	}

	if len(document.Directions) == 0 {
		return nil, &ctdf.StopNotFoundError{Stop: abbreviation}
	}

	return document.toTimetable()
}
