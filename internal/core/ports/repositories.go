package ports

import (
	"context"

	"github.com/samirrijal/fuelroute/internal/core/domain"
)

// StationRepository reads the fuel-station reference dataset.
// Implementations back onto the flat CSV file or the stations table.
type StationRepository interface {
	// LoadAll returns every usable station row. Malformed rows are skipped,
	// not surfaced as errors; a missing dataset is domain.ErrDatasetNotFound.
	LoadAll(ctx context.Context) ([]domain.FuelStation, error)
}
