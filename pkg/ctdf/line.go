package ctdf

// Line is a tram line as configured in the network catalog. FullName must
// match the upstream line name exactly.
type Line struct {
	ShortID  string `yaml:"short_id" json:"short_id" groups:"basic"`
	FullName string `yaml:"full_name" json:"full_name" groups:"basic"`
}
