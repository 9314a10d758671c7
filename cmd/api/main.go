package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/nats-io/nats.go"

	"github.com/samirrijal/fuelroute/internal/adapters/http"
	natsadapter "github.com/samirrijal/fuelroute/internal/adapters/nats"
	"github.com/samirrijal/fuelroute/internal/adapters/nominatim"
	"github.com/samirrijal/fuelroute/internal/adapters/osrm"
	"github.com/samirrijal/fuelroute/internal/adapters/postgres"
	"github.com/samirrijal/fuelroute/internal/adapters/stationcsv"
	"github.com/samirrijal/fuelroute/internal/adapters/valkey"
	"github.com/samirrijal/fuelroute/internal/core/ports"
	"github.com/samirrijal/fuelroute/internal/core/usecases"
	"github.com/samirrijal/fuelroute/internal/pkg/config"
	"github.com/samirrijal/fuelroute/internal/pkg/logging"
	"github.com/samirrijal/fuelroute/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("fuelroute-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger := logging.Setup(logLevel, "json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.TempoAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown(context.Background())
		}
	}

	// Database (optional; the catalog runs off the CSV when disabled)
	var db *postgres.DB
	if cfg.Database.Enabled {
		db, err = postgres.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
	}

	// Cache (optional shared geocode tier)
	var cache *valkey.Cache
	if cfg.Valkey.Enabled {
		cache, err = valkey.New(cfg.Valkey.Addr)
		if err != nil {
			slog.Warn("valkey unavailable", "error", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	// NATS (optional plan event fan-out)
	var publisher ports.EventPublisher
	var natsConn *nats.Conn
	if cfg.NATS.Enabled {
		pub, err := natsadapter.NewPublisher(cfg.NATS.URL)
		if err != nil {
			slog.Warn("nats unavailable", "error", err)
		} else {
			publisher = pub
			defer pub.Close()
		}

		// Raw NATS connection for WebSocket relay
		natsConn, err = natsadapter.RawConn(cfg.NATS.URL)
		if err != nil {
			slog.Warn("nats ws conn unavailable", "error", err)
		}
	}

	// Station catalog source
	var stationRepo ports.StationRepository
	if db != nil {
		stationRepo = postgres.NewStationRepo(db)
	} else {
		stationRepo = stationcsv.New(cfg.Dataset.Paths, logger)
	}

	// Providers
	geocoder := nominatim.New(nominatim.Config{
		BaseURL:      cfg.Geocoder.BaseURL,
		CountryCodes: cfg.Geocoder.CountryCodes,
		Timeout:      time.Duration(cfg.Geocoder.TimeoutSeconds) * time.Second,
		UserAgent:    cfg.Geocoder.UserAgent,
	})
	router := osrm.New(osrm.Config{
		BaseURL: cfg.Router.BaseURL,
		Timeout: time.Duration(cfg.Router.TimeoutSeconds) * time.Second,
	})

	// Use cases
	var cacheSvc ports.CacheService
	if cache != nil {
		cacheSvc = cache
	}
	geocodeSvc := usecases.NewGeocodeService(geocoder, cacheSvc, logger)
	routeSvc := usecases.NewRouteService(router, logger)
	catalogSvc := usecases.NewCatalogService(stationRepo, logger)
	planner := usecases.NewPlanner(usecases.PlannerConfig{
		VehicleRangeMiles: cfg.Planner.VehicleRangeMiles,
		MilesPerGallon:    cfg.Planner.MilesPerGallon,
	})
	planSvc := usecases.NewPlanService(geocodeSvc, routeSvc, catalogSvc, planner, publisher, logger)

	deps := &http.Dependencies{
		Plans:   planSvc,
		Catalog: catalogSvc,
		NATS:    natsConn,
		DB:      db,
		Cache:   cache,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    1024 * 1024, // 1 MB max request body
		AppName:      "FuelRoute API",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000, http://localhost:5173",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	// Give in-flight requests up to 10s to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}
