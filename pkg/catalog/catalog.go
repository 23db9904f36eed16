package catalog

import (
	"errors"
	"fmt"

	"github.com/travigo/luas/pkg/ctdf"
	"golang.org/x/exp/slices"
)

// Catalog is the read-only set of tram lines the client knows about, kept in
// declaration order.
type Catalog struct {
	lines []ctdf.Line
}

func New(lines []ctdf.Line) (*Catalog, error) {
	if len(lines) == 0 {
		return nil, errors.New("catalog must contain at least one line")
	}

	seen := []string{}
	for _, line := range lines {
		if line.ShortID == "" || line.FullName == "" {
			return nil, fmt.Errorf("line %q must have a short id and a full name", line.ShortID)
		}

		if slices.Contains(seen, line.ShortID) {
			return nil, fmt.Errorf("line %q declared more than once", line.ShortID)
		}
		seen = append(seen, line.ShortID)
	}

	return &Catalog{lines: slices.Clone(lines)}, nil
}

func (c *Catalog) FullNameOf(shortID string) (string, error) {
	index := slices.IndexFunc(c.lines, func(line ctdf.Line) bool {
		return line.ShortID == shortID
	})
	if index == -1 {
		return "", fmt.Errorf("line %s: %w", shortID, ctdf.ErrUnknownLine)
	}

	return c.lines[index].FullName, nil
}

func (c *Catalog) Lines() []ctdf.Line {
	return slices.Clone(c.lines)
}

func (c *Catalog) ShortIDs() []string {
	shortIDs := make([]string, 0, len(c.lines))
	for _, line := range c.lines {
		shortIDs = append(shortIDs, line.ShortID)
	}

	return shortIDs
}
