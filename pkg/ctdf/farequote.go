package ctdf

type FareQuote struct {
	From string `json:"from" groups:"basic"`
	To   string `json:"to" groups:"basic"`

	Adults   int `json:"adults" groups:"basic"`
	Children int `json:"children" groups:"basic"`

	FarePeak       string `json:"fare_peak" groups:"basic"`
	FareOffPeak    string `json:"fare_offpeak" groups:"basic"`
	ZonesTravelled string `json:"zones_travelled" groups:"basic"`
}
