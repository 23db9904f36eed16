package resolver

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/travigo/luas/pkg/catalog"
	"github.com/travigo/luas/pkg/ctdf"
)

type StopDirectory interface {
	ListStops(shortID string) ([]*ctdf.Stop, error)
}

// Resolver answers cross-line questions about stops using live directory
// data. Nothing is memoised, so LineOf costs one directory request per
// configured line in the worst case.
type Resolver struct {
	catalog   *catalog.Catalog
	directory StopDirectory
}

func New(networkCatalog *catalog.Catalog, directory StopDirectory) *Resolver {
	return &Resolver{
		catalog:   networkCatalog,
		directory: directory,
	}
}

// LineOf returns the short id of the first line, in catalog order, that
// contains the stop.
func (r *Resolver) LineOf(abbreviation string) (string, error) {
	_, line, err := r.FindStop(abbreviation)

	return line, err
}

// FindStop returns the stop record together with the short id of its line.
func (r *Resolver) FindStop(abbreviation string) (*ctdf.Stop, string, error) {
	for _, shortID := range r.catalog.ShortIDs() {
		stops, err := r.directory.ListStops(shortID)
		if err != nil {
			return nil, "", err
		}

		if stop := ctdf.MatchStop(stops, abbreviation); stop != nil {
			log.Debug().Str("stop", abbreviation).Str("line", shortID).Msg("Resolved stop line")
			return stop, shortID, nil
		}
	}

	return nil, "", ctdf.ErrLineNotFound
}

// StopIsValid is false only when no line contains the stop. Any other
// failure is returned as an error.
func (r *Resolver) StopIsValid(abbreviation string) (bool, error) {
	_, err := r.LineOf(abbreviation)

	if errors.Is(err, ctdf.ErrLineNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	return true, nil
}

// StopsShareLine is true when both stops resolve to the same line. A stop
// that is on no line makes the answer false rather than an error, in either
// argument position. Other failures are returned.
func (r *Resolver) StopsShareLine(first string, second string) (bool, error) {
	firstLine, err := r.LineOf(first)
	if errors.Is(err, ctdf.ErrLineNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	secondLine, err := r.LineOf(second)
	if errors.Is(err, ctdf.ErrLineNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	return firstLine == secondLine, nil
}
