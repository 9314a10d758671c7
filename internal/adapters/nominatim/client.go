// Package nominatim implements geocoding against the Nominatim search API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/samirrijal/fuelroute/internal/core/domain"
)

type Config struct {
	BaseURL      string
	CountryCodes string
	Timeout      time.Duration
	UserAgent    string
}

// Client geocodes free-text locations. Nominatim's usage policy requires a
// descriptive User-Agent on every request.
type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	if cfg.CountryCodes == "" {
		cfg.CountryCodes = "us"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "fuelroute/1.0"
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a location to its best candidate coordinate. An empty
// candidate list is domain.ErrLocationNotFound.
func (c *Client) Geocode(ctx context.Context, location string) (domain.GeoPoint, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("countrycodes", c.cfg.CountryCodes)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.GeoPoint{}, fmt.Errorf("geocode request: unexpected status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.GeoPoint{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return domain.GeoPoint{}, domain.ErrLocationNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse longitude %q: %w", results[0].Lon, err)
	}

	return domain.GeoPoint{Lat: lat, Lon: lon}, nil
}
