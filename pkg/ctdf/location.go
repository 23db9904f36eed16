package ctdf

import (
	"fmt"
	"net/url"
)

const mapZoomLevel = 14

// MapURL points OpenStreetMap at the stop with a marker on its coordinates.
func (s *Stop) MapURL() string {
	query := url.Values{}
	query.Set("mlat", s.Latitude)
	query.Set("mlon", s.Longitude)

	return fmt.Sprintf("https://www.openstreetmap.org/?%s#map=%d/%s/%s", query.Encode(), mapZoomLevel, s.Latitude, s.Longitude)
}
