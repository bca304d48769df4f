package location

import "fmt"

// Map defaults. The attribution is required by the tile provider.
const (
	DefaultZoom = 15
	TileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	Attribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
)

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

func (p LatLng) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func (p LatLng) String() string {
	return fmt.Sprintf("%.4f,%.4f", p.Lat, p.Lng)
}

// BusinessHours is one row of the opening hours table.
type BusinessHours struct {
	Day   string `json:"day" yaml:"day"`
	Hours string `json:"hours" yaml:"hours"`
}

// Info is the business data the panel is built from.
type Info struct {
	Name        string          `yaml:"name"`
	Address     string          `yaml:"address"`
	Phone       string          `yaml:"phone"`
	Email       string          `yaml:"email"`
	Hours       []BusinessHours `yaml:"hours"`
	Coordinates *LatLng         `yaml:"coordinates"`
}

// DefaultInfo returns the gym's published details.
func DefaultInfo() Info {
	return Info{
		Name:    "מכון כושר ביתא",
		Address: "רחוב הרצל 123, תל אביב",
		Phone:   "03-1234567",
		Email:   "info@betagym.co.il",
		Hours: []BusinessHours{
			{Day: "ראשון - חמישי", Hours: "06:00 - 23:00"},
			{Day: "שישי", Hours: "06:00 - 16:00"},
			{Day: "שבת", Hours: "08:00 - 14:00"},
		},
		Coordinates: &LatLng{Lat: 32.0853, Lng: 34.7818},
	}
}
