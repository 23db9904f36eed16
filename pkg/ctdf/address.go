package ctdf

type Address struct {
	FullAddress string `json:"full_address" groups:"basic"`
	HouseNumber string `json:"house_number" groups:"basic"`
	Road        string `json:"road" groups:"basic"`
	Town        string `json:"town" groups:"basic"`
	City        string `json:"city" groups:"basic"`
	County      string `json:"county" groups:"basic"`
	State       string `json:"state" groups:"basic"`
	Postcode    string `json:"postcode" groups:"basic"`
	Country     string `json:"country" groups:"basic"`
	CountryCode string `json:"country_code" groups:"basic"`
}

// Fields lists the address as label/value pairs in display order.
func (a *Address) Fields() [][2]string {
	return [][2]string{
		{"Full address", a.FullAddress},
		{"House number", a.HouseNumber},
		{"Road", a.Road},
		{"Town", a.Town},
		{"City", a.City},
		{"County", a.County},
		{"State", a.State},
		{"Postcode", a.Postcode},
		{"Country", a.Country},
		{"Country code", a.CountryCode},
	}
}
