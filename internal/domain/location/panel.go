package location

import "strings"

const (
	heading = "בואו לבקר אותנו"
	intro   = "אנחנו מחכים לכם במכון כושר ביתא - המקום המושלם לאימון שלכם"
)

// Panel renders the business details next to a map. It holds no mutable
// state once built.
type Panel struct {
	name    string
	address string
	phone   string
	email   string
	hours   []BusinessHours
	center  LatLng
	zoom    int
}

// NewPanel validates info. A panel cannot exist without a coordinate pair.
func NewPanel(info Info) (*Panel, error) {
	if info.Coordinates == nil {
		return nil, ErrMissingCoordinates
	}
	if !info.Coordinates.Valid() {
		return nil, ErrInvalidCoordinates
	}

	hours := make([]BusinessHours, len(info.Hours))
	copy(hours, info.Hours)

	return &Panel{
		name:    info.Name,
		address: info.Address,
		phone:   info.Phone,
		email:   info.Email,
		hours:   hours,
		center:  *info.Coordinates,
		zoom:    DefaultZoom,
	}, nil
}

// Marker pins the business on the map.
type Marker struct {
	Position LatLng `json:"position"`
	Title    string `json:"title"`
	Caption  string `json:"caption"`
}

// Map is what the client-side map widget is initialised with.
type Map struct {
	Center      LatLng `json:"center"`
	Zoom        int    `json:"zoom"`
	TileURL     string `json:"tile_url"`
	Attribution string `json:"attribution"`
	Marker      Marker `json:"marker"`
}

// View is the render model of the panel.
type View struct {
	Heading   string          `json:"heading"`
	Intro     string          `json:"intro"`
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	Phone     string          `json:"phone"`
	PhoneHref string          `json:"phone_href"`
	Email     string          `json:"email"`
	EmailHref string          `json:"email_href"`
	Hours     []BusinessHours `json:"hours"`
	Map       *Map            `json:"map"`
}

// View builds the render model. Map stays nil until mounted is true, so the
// first server render never emits anything map related.
func (p *Panel) View(mounted bool) View {
	hours := make([]BusinessHours, len(p.hours))
	copy(hours, p.hours)

	v := View{
		Heading:   heading,
		Intro:     intro,
		Name:      p.name,
		Address:   p.address,
		Phone:     p.phone,
		PhoneHref: "tel:" + strings.ReplaceAll(p.phone, " ", ""),
		Email:     p.email,
		EmailHref: "mailto:" + p.email,
		Hours:     hours,
	}
	if mounted {
		m := p.Map()
		v.Map = &m
	}
	return v
}

// Map returns the map model regardless of mount state.
func (p *Panel) Map() Map {
	return Map{
		Center:      p.center,
		Zoom:        p.zoom,
		TileURL:     TileURL,
		Attribution: Attribution,
		Marker: Marker{
			Position: p.center,
			Title:    p.name,
			Caption:  p.name + "\n" + p.address,
		},
	}
}

func (p *Panel) Center() LatLng { return p.center }
