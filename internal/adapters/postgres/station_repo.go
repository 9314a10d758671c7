package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/samirrijal/fuelroute/internal/core/domain"
)

// StationRepo implements ports.StationRepository with pgx. It backs the
// catalog for deployments where the fuel price dataset has been ingested
// into Postgres instead of being read from the CSV on disk.
type StationRepo struct {
	db *DB
}

// NewStationRepo creates a new StationRepo.
func NewStationRepo(db *DB) *StationRepo {
	return &StationRepo{db: db}
}

// LoadAll returns every station in ingestion order.
func (r *StationRepo) LoadAll(ctx context.Context) ([]domain.FuelStation, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT name, COALESCE(address, ''), COALESCE(city, ''), state, retail_price
		FROM fuel_stations
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []domain.FuelStation
	for rows.Next() {
		var s domain.FuelStation
		if err := rows.Scan(&s.Name, &s.Address, &s.City, &s.State, &s.Price); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(stations) == 0 {
		return nil, domain.ErrDatasetNotFound
	}
	return stations, nil
}

// UpsertBatch inserts many stations using pgx.Batch. Rows are keyed on
// name, address and state so re-running the ingestor refreshes prices.
func (r *StationRepo) UpsertBatch(ctx context.Context, stations []domain.FuelStation) error {
	batch := &pgx.Batch{}
	for _, s := range stations {
		batch.Queue(`
			INSERT INTO fuel_stations (name, address, city, state, retail_price)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (name, address, state) DO UPDATE
			SET city = EXCLUDED.city, retail_price = EXCLUDED.retail_price
		`, s.Name, s.Address, s.City, s.State, s.Price)
	}
	br := r.db.Pool.SendBatch(ctx, batch)
	defer br.Close()
	for range stations {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch exec: %w", err)
		}
	}
	return nil
}

// CheapestByState returns up to limit stations in one state ordered by
// ascending price. Used by the ingestor's verification pass.
func (r *StationRepo) CheapestByState(ctx context.Context, state string, limit int) ([]domain.FuelStation, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT name, COALESCE(address, ''), COALESCE(city, ''), state, retail_price
		FROM fuel_stations
		WHERE state = $1
		ORDER BY retail_price, id
		LIMIT $2
	`, state, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []domain.FuelStation
	for rows.Next() {
		var s domain.FuelStation
		if err := rows.Scan(&s.Name, &s.Address, &s.City, &s.State, &s.Price); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}
