package location

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
)

func TestNewPanelRequiresCoordinates(t *testing.T) {
	info := DefaultInfo()
	info.Coordinates = nil
	if _, err := NewPanel(info); !errors.Is(err, ErrMissingCoordinates) {
		t.Fatalf("expected ErrMissingCoordinates, got %v", err)
	}

	info.Coordinates = &LatLng{Lat: 91, Lng: 34}
	if _, err := NewPanel(info); !errors.Is(err, ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
}

func TestViewDefersMap(t *testing.T) {
	p, err := NewPanel(DefaultInfo())
	if err != nil {
		t.Fatalf("new panel: %v", err)
	}

	if v := p.View(false); v.Map != nil {
		t.Fatalf("map must not be rendered before mount")
	}

	v := p.View(true)
	if v.Map == nil {
		t.Fatalf("map missing after mount")
	}
	want := LatLng{Lat: 32.0853, Lng: 34.7818}
	if v.Map.Center != want || v.Map.Marker.Position != want {
		t.Fatalf("unexpected centre %+v", v.Map)
	}
	if v.Map.Zoom != 15 || v.Map.TileURL != TileURL || v.Map.Attribution != Attribution {
		t.Fatalf("unexpected map settings %+v", v.Map)
	}
	if !strings.Contains(v.Map.Marker.Caption, "רחוב הרצל 123, תל אביב") ||
		!strings.Contains(v.Map.Marker.Caption, "מכון כושר ביתא") {
		t.Fatalf("caption must carry name and address: %q", v.Map.Marker.Caption)
	}
	if v.PhoneHref != "tel:03-1234567" || v.EmailHref != "mailto:info@betagym.co.il" {
		t.Fatalf("unexpected links %q %q", v.PhoneHref, v.EmailHref)
	}
}

func TestHoursKeepOrderAndAreCopied(t *testing.T) {
	info := DefaultInfo()
	p, err := NewPanel(info)
	if err != nil {
		t.Fatalf("new panel: %v", err)
	}

	info.Hours[0].Hours = "closed"
	v := p.View(false)
	if diff := cmp.Diff(DefaultInfo().Hours, v.Hours); diff != "" {
		t.Fatalf("hours mismatch (-want +got):\n%s", diff)
	}

	v.Hours[1].Day = "x"
	if p.View(false).Hours[1].Day != "שישי" {
		t.Fatalf("view exposed internal hours slice")
	}
}

type staticSource struct{ p *Panel }

func (s staticSource) Panel() *Panel { return s.p }

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p, _ := NewPanel(DefaultInfo())

	r := gin.New()
	NewHandler(staticSource{p}).RegisterRoutes(r.Group("/api/v1"))

	tests := []struct {
		name    string
		path    string
		status  int
		wantMap bool
	}{
		{"default mounted", "/api/v1/location", http.StatusOK, true},
		{"not mounted", "/api/v1/location?mounted=false", http.StatusOK, false},
		{"bad flag", "/api/v1/location?mounted=maybe", http.StatusBadRequest, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rr.Code != tt.status {
				t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
			}
			if tt.status != http.StatusOK {
				return
			}
			var env struct {
				Data View `json:"data"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if (env.Data.Map != nil) != tt.wantMap {
				t.Fatalf("map presence = %v, want %v", env.Data.Map != nil, tt.wantMap)
			}
		})
	}

	empty := gin.New()
	NewHandler(staticSource{}).RegisterRoutes(empty.Group("/api/v1"))
	rr := httptest.NewRecorder()
	empty.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/location", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rr.Code)
	}
}
