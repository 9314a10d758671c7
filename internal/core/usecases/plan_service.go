package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samirrijal/fuelroute/internal/core/domain"
	"github.com/samirrijal/fuelroute/internal/core/ports"
	"github.com/samirrijal/fuelroute/internal/pkg/geospatial"
	"github.com/samirrijal/fuelroute/internal/pkg/metrics"
)

// PlanService runs the full planning pipeline: geocode both endpoints,
// route between them, trim the geometry for transport, pick candidate
// stations along the corridor, and place fuel stops.
type PlanService struct {
	geocoder  *GeocodeService
	router    *RouteService
	catalog   *CatalogService
	planner   *Planner
	publisher ports.EventPublisher // optional, may be nil
	logger    *slog.Logger
}

func NewPlanService(
	geocoder *GeocodeService,
	router *RouteService,
	catalog *CatalogService,
	planner *Planner,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *PlanService {
	return &PlanService{
		geocoder:  geocoder,
		router:    router,
		catalog:   catalog,
		planner:   planner,
		publisher: publisher,
		logger:    logger,
	}
}

// LocationError reports which endpoint of the trip failed to geocode.
type LocationError struct {
	Field    string // "start_location" or "end_location"
	Location string
	Err      error
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Location, e.Err)
}

func (e *LocationError) Unwrap() error { return e.Err }

// PlanRoute computes a fuel-optimized route plan between two free-text USA
// locations.
func (s *PlanService) PlanRoute(ctx context.Context, startLocation, endLocation string) (*domain.RoutePlan, error) {
	start, err := s.geocoder.Resolve(ctx, startLocation)
	if err != nil {
		return nil, &LocationError{Field: "start_location", Location: startLocation, Err: err}
	}
	end, err := s.geocoder.Resolve(ctx, endLocation)
	if err != nil {
		return nil, &LocationError{Field: "end_location", Location: endLocation, Err: err}
	}

	route, err := s.router.Route(ctx, start, end)
	if err != nil {
		return nil, err
	}

	stations, err := s.catalog.Stations(ctx)
	if err != nil {
		return nil, err
	}
	candidates := filterByCorridor(stations, startLocation, endLocation)

	stops, summary, err := s.planner.Plan(route.DistanceMiles, candidates)
	if err != nil {
		return nil, err
	}

	plan := &domain.RoutePlan{
		Route: domain.RouteSummary{
			Start:         startLocation,
			End:           endLocation,
			DistanceMiles: round2(route.DistanceMiles),
			Geometry:      geospatial.Simplify(route.Geometry, geospatial.DefaultMaxGeometryPoints),
		},
		FuelStops: stops,
		Summary:   summary,
	}

	metrics.PlansComputed.Inc()
	s.logger.Info("route plan computed",
		"start", startLocation,
		"end", endLocation,
		"distance_miles", plan.Route.DistanceMiles,
		"fuel_stops", len(stops),
		"approximated", route.Approximated,
	)

	if s.publisher != nil {
		if err := s.publisher.PublishRoutePlanned(ctx, plan); err != nil {
			s.logger.Warn("failed to publish plan event", "error", err)
		}
	}

	return plan, nil
}
