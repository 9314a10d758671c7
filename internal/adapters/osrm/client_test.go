package osrm

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/samirrijal/fuelroute/internal/core/domain"
)

func TestRouteConvertsDistanceAndGeometry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/route/v1/driving/") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("overview"); got != "full" {
			t.Errorf("unexpected overview %q", got)
		}
		if got := r.URL.Query().Get("geometries"); got != "geojson" {
			t.Errorf("unexpected geometries %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"distance": 160934.4,
				"geometry": {"coordinates": [[-87.63, 41.88], [-88.0, 41.5], [-89.0, 41.0]]}
			}]
		}`))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	got, err := client.Route(context.Background(),
		domain.GeoPoint{Lat: 41.88, Lon: -87.63},
		domain.GeoPoint{Lat: 41.0, Lon: -89.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 160934.4 meters is 100 miles.
	if math.Abs(got.DistanceMiles-100) > 0.01 {
		t.Errorf("expected ~100 miles, got %f", got.DistanceMiles)
	}
	if len(got.Geometry) != 3 {
		t.Fatalf("expected 3 geometry points, got %d", len(got.Geometry))
	}
	if got.Geometry[0].Lat != 41.88 || got.Geometry[0].Lon != -87.63 {
		t.Errorf("lon/lat pairs not converted: %+v", got.Geometry[0])
	}
	if got.Approximated {
		t.Error("provider route must not be flagged approximated")
	}
}

func TestRouteNonOkCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	if _, err := client.Route(context.Background(), domain.GeoPoint{}, domain.GeoPoint{}); err == nil {
		t.Error("expected error for non-Ok code")
	}
}

func TestRouteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL})
	if _, err := client.Route(context.Background(), domain.GeoPoint{}, domain.GeoPoint{}); err == nil {
		t.Error("expected error for 502 response")
	}
}
