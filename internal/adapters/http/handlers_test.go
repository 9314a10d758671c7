package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	handler "github.com/samirrijal/fuelroute/internal/adapters/http"
	"github.com/samirrijal/fuelroute/internal/core/domain"
	"github.com/samirrijal/fuelroute/internal/core/usecases"
)

// ---- Mock providers and repositories ----

type mockGeocoder struct {
	geocodeFn func(ctx context.Context, location string) (domain.GeoPoint, error)
}

func (m *mockGeocoder) Geocode(ctx context.Context, location string) (domain.GeoPoint, error) {
	if m.geocodeFn != nil {
		return m.geocodeFn(ctx, location)
	}
	return domain.GeoPoint{}, domain.ErrLocationNotFound
}

type mockRouter struct {
	routeFn func(ctx context.Context, start, end domain.GeoPoint) (*domain.RouteInfo, error)
}

func (m *mockRouter) Route(ctx context.Context, start, end domain.GeoPoint) (*domain.RouteInfo, error) {
	if m.routeFn != nil {
		return m.routeFn(ctx, start, end)
	}
	return nil, errors.New("no route")
}

type mockStations struct {
	loadAllFn func(ctx context.Context) ([]domain.FuelStation, error)
}

func (m *mockStations) LoadAll(ctx context.Context) ([]domain.FuelStation, error) {
	if m.loadAllFn != nil {
		return m.loadAllFn(ctx)
	}
	return nil, domain.ErrDatasetNotFound
}

// ---- Test helpers ----

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func usGeocoder() *mockGeocoder {
	return &mockGeocoder{
		geocodeFn: func(_ context.Context, location string) (domain.GeoPoint, error) {
			switch {
			case strings.Contains(location, "chicago"):
				return domain.GeoPoint{Lat: 41.88, Lon: -87.63}, nil
			case strings.Contains(location, "denver"):
				return domain.GeoPoint{Lat: 39.74, Lon: -104.99}, nil
			case strings.Contains(location, "reykjavik"):
				return domain.GeoPoint{Lat: 64.15, Lon: -21.95}, nil
			default:
				return domain.GeoPoint{}, domain.ErrLocationNotFound
			}
		},
	}
}

func corridorStations() []domain.FuelStation {
	return []domain.FuelStation{
		{Name: "Pilot Topeka", Address: "I-70 Exit 12", City: "Topeka", State: "KS", Price: 3.05},
		{Name: "TA Denver", Address: "I-25 Exit 104", City: "Denver", State: "CO", Price: 3.55},
		{Name: "Miami Fuel", Address: "I-95", City: "Miami", State: "FL", Price: 2.80},
	}
}

type depsOptions struct {
	geocoder *mockGeocoder
	router   *mockRouter
	stations *mockStations
}

func makeDeps(opts depsOptions) *handler.Dependencies {
	logger := discardLogger()

	if opts.geocoder == nil {
		opts.geocoder = usGeocoder()
	}
	if opts.router == nil {
		opts.router = &mockRouter{
			routeFn: func(_ context.Context, start, end domain.GeoPoint) (*domain.RouteInfo, error) {
				return &domain.RouteInfo{
					DistanceMiles: 1003.57,
					Geometry:      []domain.GeoPoint{start, end},
				}, nil
			},
		}
	}
	if opts.stations == nil {
		opts.stations = &mockStations{
			loadAllFn: func(_ context.Context) ([]domain.FuelStation, error) {
				return corridorStations(), nil
			},
		}
	}

	geocodeSvc := usecases.NewGeocodeService(opts.geocoder, nil, logger)
	routeSvc := usecases.NewRouteService(opts.router, logger)
	catalogSvc := usecases.NewCatalogService(opts.stations, logger)
	planner := usecases.NewPlanner(usecases.DefaultPlannerConfig())
	planSvc := usecases.NewPlanService(geocodeSvc, routeSvc, catalogSvc, planner, nil, logger)

	return &handler.Dependencies{
		Plans:   planSvc,
		Catalog: catalogSvc,
	}
}

func setupApp(deps *handler.Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler.SetupRoutes(app, deps)
	return app
}

type planResponse struct {
	Route struct {
		Start         string           `json:"start"`
		End           string           `json:"end"`
		DistanceMiles float64          `json:"distance_miles"`
		Geometry      []map[string]any `json:"geometry"`
	} `json:"route"`
	FuelStops []struct {
		StopNumber        int     `json:"stop_number"`
		StationName       string  `json:"station_name"`
		State             string  `json:"state"`
		PricePerGallon    float64 `json:"price_per_gallon"`
		DistanceFromStart float64 `json:"distance_from_start"`
	} `json:"fuel_stops"`
	FuelSummary struct {
		TotalGallons float64 `json:"total_gallons_needed"`
		AveragePrice float64 `json:"average_price_per_gallon"`
		TotalCost    float64 `json:"total_fuel_cost"`
	} `json:"fuel_summary"`
}

// ---- Plan route handler tests ----

func TestPlanRoute_Success(t *testing.T) {
	app := setupApp(makeDeps(depsOptions{}))

	body := `{"start_location": "chicago, il", "end_location": "denver, co"}`
	req := httptest.NewRequest("POST", "/v1/routes/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var plan planResponse
	if err := json.NewDecoder(resp.Body).Decode(&plan); err != nil {
		t.Fatal(err)
	}
	if plan.Route.Start != "chicago, il" || plan.Route.End != "denver, co" {
		t.Errorf("route endpoints: got %q to %q", plan.Route.Start, plan.Route.End)
	}
	if plan.Route.DistanceMiles != 1003.57 {
		t.Errorf("expected distance 1003.57, got %f", plan.Route.DistanceMiles)
	}
	if len(plan.FuelStops) != 2 {
		t.Fatalf("expected 2 fuel stops, got %d", len(plan.FuelStops))
	}
	// Cheapest corridor station first; the Florida outlier is filtered out.
	if plan.FuelStops[0].StationName != "Pilot Topeka" {
		t.Errorf("expected cheapest corridor station first, got %q", plan.FuelStops[0].StationName)
	}
	if plan.FuelStops[0].DistanceFromStart != 500 {
		t.Errorf("expected first stop at 500 miles, got %f", plan.FuelStops[0].DistanceFromStart)
	}
	if plan.FuelSummary.AveragePrice != 3.30 {
		t.Errorf("expected average price 3.30, got %f", plan.FuelSummary.AveragePrice)
	}
}

func TestPlanRoute_MissingFields(t *testing.T) {
	app := setupApp(makeDeps(depsOptions{}))

	req := httptest.NewRequest("POST", "/v1/routes/plan", strings.NewReader(`{"start_location": "chicago, il"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var apiErr struct {
		Code string `json:"code"`
		Hint string `json:"hint"`
	}
	json.NewDecoder(resp.Body).Decode(&apiErr)
	if apiErr.Code != "bad_request" {
		t.Errorf("expected bad_request, got %s", apiErr.Code)
	}
	if apiErr.Hint == "" {
		t.Error("expected a corrective usage hint")
	}
}

func TestPlanRoute_NonStringLocation(t *testing.T) {
	app := setupApp(makeDeps(depsOptions{}))

	body := `{"start_location": {"city": "chicago"}, "end_location": "denver, co"}`
	req := httptest.NewRequest("POST", "/v1/routes/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestPlanRoute_UnknownLocation(t *testing.T) {
	app := setupApp(makeDeps(depsOptions{}))

	body := `{"start_location": "nowhereville", "end_location": "denver, co"}`
	req := httptest.NewRequest("POST", "/v1/routes/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var apiErr struct {
		Message string `json:"message"`
		Hint    string `json:"hint"`
	}
	json.NewDecoder(resp.Body).Decode(&apiErr)
	if !strings.Contains(apiErr.Message, "start_location") || !strings.Contains(apiErr.Message, "nowhereville") {
		t.Errorf("error must name the failing endpoint and input, got %q", apiErr.Message)
	}
}

func TestPlanRoute_OutOfRegion(t *testing.T) {
	app := setupApp(makeDeps(depsOptions{}))

	body := `{"start_location": "chicago, il", "end_location": "reykjavik"}`
	req := httptest.NewRequest("POST", "/v1/routes/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var apiErr struct {
		Message string `json:"message"`
	}
	json.NewDecoder(resp.Body).Decode(&apiErr)
	if !strings.Contains(apiErr.Message, "end_location") {
		t.Errorf("error must name the failing endpoint, got %q", apiErr.Message)
	}
}

func TestPlanRoute_RoutingFallbackStillSucceeds(t *testing.T) {
	deps := makeDeps(depsOptions{
		router: &mockRouter{
			routeFn: func(_ context.Context, _, _ domain.GeoPoint) (*domain.RouteInfo, error) {
				return nil, errors.New("connection refused")
			},
		},
	})
	app := setupApp(deps)

	body := `{"start_location": "chicago, il", "end_location": "denver, co"}`
	req := httptest.NewRequest("POST", "/v1/routes/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("routing failures must degrade, not fail: got %d", resp.StatusCode)
	}

	var plan planResponse
	json.NewDecoder(resp.Body).Decode(&plan)
	if len(plan.Route.Geometry) != 2 {
		t.Errorf("expected 2-point fallback geometry, got %d points", len(plan.Route.Geometry))
	}
	if plan.Route.DistanceMiles <= 0 {
		t.Error("fallback distance must be positive")
	}
}

func TestPlanRoute_DatasetMissing(t *testing.T) {
	deps := makeDeps(depsOptions{
		stations: &mockStations{
			loadAllFn: func(_ context.Context) ([]domain.FuelStation, error) {
				return nil, domain.ErrDatasetNotFound
			},
		},
	})
	app := setupApp(deps)

	body := `{"start_location": "chicago, il", "end_location": "denver, co"}`
	req := httptest.NewRequest("POST", "/v1/routes/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 500 {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}

// ---- Legacy alias ----

func TestLegacyCalculateRoute_DeprecationHeaders(t *testing.T) {
	app := setupApp(makeDeps(depsOptions{}))

	body := `{"start_location": "chicago, il", "end_location": "denver, co"}`
	req := httptest.NewRequest("POST", "/api/calculate-route/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Deprecation") != "true" {
		t.Error("expected Deprecation header on legacy path")
	}
	if !strings.Contains(resp.Header.Get("Link"), "/v1/routes/plan") {
		t.Errorf("expected successor link, got %q", resp.Header.Get("Link"))
	}
	if resp.Header.Get("Sunset") == "" {
		t.Error("expected Sunset header on legacy path")
	}
}

// ---- Station handler tests ----

func TestListStations_Pagination(t *testing.T) {
	stations := make([]domain.FuelStation, 5)
	for i := range stations {
		stations[i] = domain.FuelStation{Name: fmt.Sprintf("Stop %d", i), State: "TX", Price: 3.0 + float64(i)*0.1}
	}
	deps := makeDeps(depsOptions{
		stations: &mockStations{
			loadAllFn: func(_ context.Context) ([]domain.FuelStation, error) { return stations, nil },
		},
	})
	app := setupApp(deps)

	req := httptest.NewRequest("GET", "/v1/stations?offset=2&limit=2", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Data       []domain.FuelStation `json:"data"`
		Pagination struct {
			Offset int `json:"offset"`
			Total  int `json:"total"`
		} `json:"pagination"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	if result.Pagination.Total != 5 {
		t.Errorf("expected total 5, got %d", result.Pagination.Total)
	}
	if len(result.Data) != 2 {
		t.Errorf("expected 2 stations in page, got %d", len(result.Data))
	}
	if result.Pagination.Offset != 2 {
		t.Errorf("expected offset 2, got %d", result.Pagination.Offset)
	}
	if resp.Header.Get("Link") == "" {
		t.Error("expected RFC 8288 Link headers")
	}
}

func TestListStations_StateFilter(t *testing.T) {
	app := setupApp(makeDeps(depsOptions{}))

	req := httptest.NewRequest("GET", "/v1/stations?state=KS", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Data []domain.FuelStation `json:"data"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	if len(result.Data) != 1 || result.Data[0].State != "KS" {
		t.Errorf("expected only Kansas stations, got %+v", result.Data)
	}
}

func TestListStations_BadState(t *testing.T) {
	app := setupApp(makeDeps(depsOptions{}))

	req := httptest.NewRequest("GET", "/v1/stations?state=Kansas", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCheapestStations(t *testing.T) {
	app := setupApp(makeDeps(depsOptions{}))

	req := httptest.NewRequest("GET", "/v1/stations/cheapest?limit=2", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var stations []domain.FuelStation
	json.NewDecoder(resp.Body).Decode(&stations)
	if len(stations) != 2 {
		t.Fatalf("expected 2 stations, got %d", len(stations))
	}
	if stations[0].Name != "Miami Fuel" {
		t.Errorf("expected cheapest station first, got %q", stations[0].Name)
	}
}

// ---- Health and docs ----

func TestHealth_FeatureList(t *testing.T) {
	app := setupApp(makeDeps(depsOptions{}))

	req := httptest.NewRequest("GET", "/v1/health", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var health struct {
		Status   string   `json:"status"`
		Features []string `json:"features"`
	}
	json.NewDecoder(resp.Body).Decode(&health)
	if health.Status != "healthy" {
		t.Errorf("expected healthy, got %q", health.Status)
	}
	if len(health.Features) == 0 {
		t.Error("expected a feature list")
	}
}

func TestDatasetStats(t *testing.T) {
	app := setupApp(makeDeps(depsOptions{}))

	req := httptest.NewRequest("GET", "/v1/dataset/status", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var stats struct {
		Stations int `json:"stations"`
		States   int `json:"states"`
	}
	json.NewDecoder(resp.Body).Decode(&stats)
	if stats.Stations != 3 || stats.States != 3 {
		t.Errorf("expected 3 stations across 3 states, got %+v", stats)
	}
}

// ---- GraphQL ----

func TestGraphQL_CheapestStations(t *testing.T) {
	app := setupApp(makeDeps(depsOptions{}))

	body := `{"query": "{ cheapestStations(limit: 1) { name price } }"}`
	req := httptest.NewRequest("POST", "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Data struct {
			CheapestStations []struct {
				Name  string  `json:"name"`
				Price float64 `json:"price"`
			} `json:"cheapestStations"`
		} `json:"data"`
		Errors []any `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected graphql errors: %v", result.Errors)
	}
	if len(result.Data.CheapestStations) != 1 || result.Data.CheapestStations[0].Name != "Miami Fuel" {
		t.Errorf("unexpected result %+v", result.Data.CheapestStations)
	}
}
