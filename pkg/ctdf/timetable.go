package ctdf

import (
	"strings"

	"golang.org/x/exp/slices"
)

const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

type TimetableEntry struct {
	Destination string `json:"destination" groups:"basic"`
	DueMinutes  string `json:"due_minutes" groups:"basic"`
}

// Timetable holds the upcoming trams at a stop keyed by lower-cased direction name.
type Timetable map[string][]*TimetableEntry

func DirectionKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Directions returns the timetable directions sorted by name.
func (t Timetable) Directions() []string {
	directions := make([]string, 0, len(t))
	for direction := range t {
		directions = append(directions, direction)
	}
	slices.Sort(directions)

	return directions
}
