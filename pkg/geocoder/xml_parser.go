package geocoder

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/travigo/luas/pkg/ctdf"
	"golang.org/x/net/html/charset"
)

type reverseGeocodeDocument struct {
	XMLName      xml.Name     `xml:"reversegeocode"`
	Error        *string      `xml:"error"`
	Result       resultRecord `xml:"result"`
	AddressParts addressParts `xml:"addressparts"`
}

type resultRecord struct {
	Latitude    string `xml:"lat,attr"`
	Longitude   string `xml:"lon,attr"`
	FullAddress string `xml:",chardata"`
}

type addressParts struct {
	HouseNumber string `xml:"house_number"`
	Road        string `xml:"road"`
	Town        string `xml:"town"`
	City        string `xml:"city"`
	County      string `xml:"county"`
	State       string `xml:"state"`
	Postcode    string `xml:"postcode"`
	Country     string `xml:"country"`
	CountryCode string `xml:"country_code"`
}

func parseReverseGeocode(body []byte) (*reverseGeocodeDocument, error) {
	d := xml.NewDecoder(bytes.NewReader(body))
	d.CharsetReader = charset.NewReaderLabel

	var document reverseGeocodeDocument
	if err := d.Decode(&document); err != nil {
		return nil, fmt.Errorf("%w: reverse geocode: %v", ctdf.ErrUpstreamFormat, err)
	}

	return &document, nil
}
