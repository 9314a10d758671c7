package usecases

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/samirrijal/fuelroute/internal/core/domain"
	"github.com/samirrijal/fuelroute/internal/core/ports"
	"github.com/samirrijal/fuelroute/internal/pkg/metrics"
)

// CatalogService holds the fuel station dataset, loaded once on first use
// and served from memory afterwards. A failed load is not memoized, so the
// next caller retries.
type CatalogService struct {
	repo   ports.StationRepository
	logger *slog.Logger

	mu       sync.Mutex
	stations []domain.FuelStation
	loaded   bool
}

func NewCatalogService(repo ports.StationRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// Stations returns the full catalog, loading it on first call.
func (s *CatalogService) Stations(ctx context.Context) ([]domain.FuelStation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.stations, nil
	}

	stations, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Error("failed to load station dataset", "error", err)
		return nil, err
	}

	s.stations = stations
	s.loaded = true
	metrics.StationsLoaded.Set(float64(len(stations)))
	s.logger.Info("station catalog loaded", "stations", len(stations))
	return s.stations, nil
}

// StationsByState returns the catalog entries for one two-letter state
// code, preserving dataset order.
func (s *CatalogService) StationsByState(ctx context.Context, state string) ([]domain.FuelStation, error) {
	all, err := s.Stations(ctx)
	if err != nil {
		return nil, err
	}

	state = strings.ToUpper(strings.TrimSpace(state))
	var out []domain.FuelStation
	for _, st := range all {
		if st.State == state {
			out = append(out, st)
		}
	}
	return out, nil
}

// CheapestStations returns up to limit stations ordered by ascending price,
// optionally restricted to one state. Equal prices keep dataset order.
func (s *CatalogService) CheapestStations(ctx context.Context, state string, limit int) ([]domain.FuelStation, error) {
	var all []domain.FuelStation
	var err error
	if state != "" {
		all, err = s.StationsByState(ctx, state)
	} else {
		all, err = s.Stations(ctx)
	}
	if err != nil {
		return nil, err
	}

	sorted := make([]domain.FuelStation, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}
