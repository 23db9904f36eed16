package luas

import (
	"bytes"
	"encoding/xml"

	"github.com/jinzhu/copier"
	"github.com/travigo/luas/pkg/ctdf"
	"golang.org/x/net/html/charset"
)

type stopsDocument struct {
	XMLName xml.Name    `xml:"stops"`
	Lines   []stopsLine `xml:"line"`
}

type stopsLine struct {
	Name  string       `xml:"name,attr"`
	Stops []stopRecord `xml:"stop"`
}

type stopRecord struct {
	Abbreviation string `xml:"abrev,attr"`
	DisplayName  string `xml:"pronunciation,attr"`
	ParkAndRide  string `xml:"isParkRide,attr"`
	CycleAndRide string `xml:"isCycleRide,attr"`
	Latitude     string `xml:"lat,attr"`
	Longitude    string `xml:"long,attr"`
}

type stopInfoDocument struct {
	XMLName    xml.Name            `xml:"stopInfo"`
	Stop       string              `xml:"stop,attr"`
	StopAbv    string              `xml:"stopAbv,attr"`
	Message    *string             `xml:"message"`
	Directions []forecastDirection `xml:"direction"`
}

// forecastDirection holds every <tram> of a direction, so one tram and many
// trams decode to the same slice shape.
type forecastDirection struct {
	Name  string       `xml:"name,attr"`
	Trams []tramRecord `xml:"tram"`
}

type tramRecord struct {
	Destination string `xml:"destination,attr"`
	DueMinutes  string `xml:"dueMins,attr"`
}

type fareDocument struct {
	XMLName xml.Name   `xml:"farecalc"`
	Result  fareRecord `xml:"result"`
}

type fareRecord struct {
	FarePeak       string `xml:"peak,attr"`
	FareOffPeak    string `xml:"offpeak,attr"`
	ZonesTravelled string `xml:"zonesTravelled,attr"`
}

// upstream flags are "1" for yes and anything else for no
var flagConverter = copier.TypeConverter{
	SrcType: copier.String,
	DstType: copier.Bool,
	Fn: func(src interface{}) (interface{}, error) {
		return src.(string) == "1", nil
	},
}

func decodeDocument(body []byte, document interface{}) error {
	d := xml.NewDecoder(bytes.NewReader(body))
	d.CharsetReader = charset.NewReaderLabel

	return d.Decode(document)
}

func (r *stopRecord) toStop() (*ctdf.Stop, error) {
	stop := &ctdf.Stop{}
	if err := copier.CopyWithOption(stop, r, copier.Option{Converters: []copier.TypeConverter{flagConverter}}); err != nil {
		return nil, err
	}

	return stop, nil
}

func (d *stopInfoDocument) toTimetable() (ctdf.Timetable, error) {
	timetable := ctdf.Timetable{}

	for _, direction := range d.Directions {
		key := ctdf.DirectionKey(direction.Name)
		entries := []*ctdf.TimetableEntry{}

		for _, tram := range direction.Trams {
			entry := &ctdf.TimetableEntry{}
			if err := copier.Copy(entry, &tram); err != nil {
				return nil, err
			}

			entries = append(entries, entry)
		}

		if existing, ok := timetable[key]; ok {
			timetable[key] = append(existing, entries...)
		} else {
			timetable[key] = entries
		}
	}

	return timetable, nil
}
