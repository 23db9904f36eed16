package ctdf

import (
	"strings"

	"golang.org/x/exp/slices"
)

type Stop struct {
	Abbreviation string `json:"abbreviation" groups:"basic"`
	DisplayName  string `json:"display_name" groups:"basic"`

	ParkAndRide  bool `json:"park_and_ride" groups:"basic"`
	CycleAndRide bool `json:"cycle_and_ride" groups:"basic"`

	Latitude  string `json:"latitude" groups:"basic"`
	Longitude string `json:"longitude" groups:"basic"`
}

func (s *Stop) ParkAndRideDescription() string {
	if s.ParkAndRide {
		return "Park and Ride"
	}

	return "No park"
}

func (s *Stop) CycleAndRideDescription() string {
	if s.CycleAndRide {
		return "Cycle and Ride"
	}

	return "No cycle"
}

// MatchStop finds the stop with the abbreviation, ignoring case.
func MatchStop(stops []*Stop, abbreviation string) *Stop {
	index := slices.IndexFunc(stops, func(stop *Stop) bool {
		return strings.EqualFold(stop.Abbreviation, abbreviation)
	})
	if index == -1 {
		return nil
	}

	return stops[index]
}
