//go:build integration
// +build integration

package http_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	handler "github.com/samirrijal/fuelroute/internal/adapters/http"
	"github.com/samirrijal/fuelroute/internal/adapters/postgres"
	"github.com/samirrijal/fuelroute/internal/core/domain"
	"github.com/samirrijal/fuelroute/internal/core/usecases"
	"github.com/samirrijal/fuelroute/internal/pkg/config"
)

// setupTestDB connects to the test database.
func setupTestDB(t *testing.T) *postgres.DB {
	cfg, err := config.Load("fuelroute-test")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := postgres.New(ctx, cfg.Database.DSN())
	if err != nil {
		t.Skipf("database not available: %v", err)
	}
	return db
}

func seedStations(t *testing.T, db *postgres.DB) {
	repo := postgres.NewStationRepo(db)
	err := repo.UpsertBatch(context.Background(), []domain.FuelStation{
		{Name: "IT Pilot", Address: "I-70 Exit 12", City: "Topeka", State: "KS", Price: 3.05},
		{Name: "IT Loves", Address: "I-25 Exit 104", City: "Denver", State: "CO", Price: 3.35},
	})
	if err != nil {
		t.Fatalf("seed stations: %v", err)
	}
}

// TestPlanRouteWithPostgresCatalog exercises the full planning path against
// a real stations table.
func TestPlanRouteWithPostgresCatalog(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	seedStations(t, db)

	logger := discardLogger()
	geocodeSvc := usecases.NewGeocodeService(usGeocoder(), nil, logger)
	routeSvc := usecases.NewRouteService(&mockRouter{
		routeFn: func(_ context.Context, start, end domain.GeoPoint) (*domain.RouteInfo, error) {
			return &domain.RouteInfo{DistanceMiles: 1003.57, Geometry: []domain.GeoPoint{start, end}}, nil
		},
	}, logger)
	catalogSvc := usecases.NewCatalogService(postgres.NewStationRepo(db), logger)
	planSvc := usecases.NewPlanService(geocodeSvc, routeSvc, catalogSvc,
		usecases.NewPlanner(usecases.DefaultPlannerConfig()), nil, logger)

	deps := &handler.Dependencies{Plans: planSvc, Catalog: catalogSvc, DB: db}
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler.SetupRoutes(app, deps)

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
	if len(plan.FuelStops) == 0 {
		t.Error("expected fuel stops from the seeded catalog")
	}
}
