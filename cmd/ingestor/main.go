// The ingestor loads the fuel price CSV into the stations table so API
// replicas can serve the catalog from Postgres instead of a file on disk.
package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/samirrijal/fuelroute/internal/adapters/postgres"
	"github.com/samirrijal/fuelroute/internal/adapters/stationcsv"
	"github.com/samirrijal/fuelroute/internal/pkg/config"
	"github.com/samirrijal/fuelroute/internal/pkg/logging"
)

func main() {
	csvPath := flag.String("csv", "", "path to the fuel price CSV (defaults to the configured dataset paths)")
	verifyState := flag.String("verify-state", "", "after ingest, print the cheapest stations in this state")
	flag.Parse()

	cfg, err := config.Load("fuelroute-ingestor")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.Setup("info", "text")

	ctx := context.Background()

	db, err := postgres.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	paths := cfg.Dataset.Paths
	if *csvPath != "" {
		paths = []string{*csvPath}
	}

	stations, err := stationcsv.New(paths, logger).LoadAll(ctx)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}
	log.Printf("parsed %d stations", len(stations))

	repo := postgres.NewStationRepo(db)
	if err := repo.UpsertBatch(ctx, stations); err != nil {
		log.Fatalf("upsert stations: %v", err)
	}
	log.Printf("ingestion complete: %d stations upserted", len(stations))

	if *verifyState != "" {
		state := strings.ToUpper(strings.TrimSpace(*verifyState))
		cheapest, err := repo.CheapestByState(ctx, state, 5)
		if err != nil {
			log.Fatalf("verify %s: %v", state, err)
		}
		for _, s := range cheapest {
			log.Printf("  %s  %s, %s  $%.2f", s.Name, s.City, s.State, s.Price)
		}
	}
}
