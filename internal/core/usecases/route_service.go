package usecases

import (
	"context"
	"log/slog"

	"github.com/samirrijal/fuelroute/internal/core/domain"
	"github.com/samirrijal/fuelroute/internal/core/ports"
	"github.com/samirrijal/fuelroute/internal/pkg/geospatial"
	"github.com/samirrijal/fuelroute/internal/pkg/metrics"
)

// Road distance exceeds the great-circle distance; 1.3 is a standard
// circuity factor for the US highway network.
const circuityFactor = 1.3

// RouteService computes driving routes between two points, degrading to a
// great-circle approximation when the routing provider is unavailable.
type RouteService struct {
	provider ports.RouteProvider
	logger   *slog.Logger
}

func NewRouteService(provider ports.RouteProvider, logger *slog.Logger) *RouteService {
	return &RouteService{provider: provider, logger: logger}
}

// Route returns the driving route from start to end. Provider failures are
// never surfaced: the response falls back to an approximated straight-line
// route with the Approximated flag set.
func (s *RouteService) Route(ctx context.Context, start, end domain.GeoPoint) (*domain.RouteInfo, error) {
	metrics.RouterProviderCalls.Inc()
	info, err := s.provider.Route(ctx, start, end)
	if err == nil {
		return info, nil
	}

	metrics.RouterFallbacks.Inc()
	s.logger.Warn("routing provider unavailable, using great-circle approximation", "error", err)

	miles := geospatial.HaversineMiles(start.Lat, start.Lon, end.Lat, end.Lon) * circuityFactor
	return &domain.RouteInfo{
		DistanceMiles: miles,
		Geometry:      []domain.GeoPoint{start, end},
		Approximated:  true,
	}, nil
}
