// Package osrm implements routing against an OSRM HTTP server.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/samirrijal/fuelroute/internal/core/domain"
)

const metersToMiles = 0.000621371

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
	} `json:"routes"`
}

// Route requests a driving route with full GeoJSON geometry. Any outcome
// other than a usable "Ok" payload is an error so callers can fall back.
func (c *Client) Route(ctx context.Context, start, end domain.GeoPoint) (*domain.RouteInfo, error) {
	// OSRM takes lon,lat pairs.
	endpoint := fmt.Sprintf(
		"%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.cfg.BaseURL, start.Lon, start.Lat, end.Lon, end.Lat,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build route request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("route request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("route request: unexpected status %d", resp.StatusCode)
	}

	var body routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode route response: %w", err)
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return nil, fmt.Errorf("route request: provider returned code %q", body.Code)
	}

	route := body.Routes[0]
	geometry := make([]domain.GeoPoint, 0, len(route.Geometry.Coordinates))
	for _, coord := range route.Geometry.Coordinates {
		if len(coord) < 2 {
			continue
		}
		geometry = append(geometry, domain.GeoPoint{Lat: coord[1], Lon: coord[0]})
	}

	return &domain.RouteInfo{
		DistanceMiles: route.Distance * metersToMiles,
		Geometry:      geometry,
	}, nil
}
