package usecases

import (
	"math"
	"sort"

	"github.com/samirrijal/fuelroute/internal/core/domain"
)

// PlannerConfig carries the vehicle assumptions the stop planner works
// with. Defaults model a long-haul truck.
type PlannerConfig struct {
	VehicleRangeMiles float64
	MilesPerGallon    float64
}

func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{VehicleRangeMiles: 500, MilesPerGallon: 10}
}

// Planner turns a route distance and a candidate station set into fuel
// stops and a cost summary.
type Planner struct {
	cfg PlannerConfig
}

func NewPlanner(cfg PlannerConfig) *Planner {
	if cfg.VehicleRangeMiles <= 0 {
		cfg.VehicleRangeMiles = 500
	}
	if cfg.MilesPerGallon <= 0 {
		cfg.MilesPerGallon = 10
	}
	return &Planner{cfg: cfg}
}

// Plan places one fuel stop per vehicle range along the route, always at
// the cheapest available stations. Stations repeat cyclically when the
// route needs more stops than there are candidates.
func (p *Planner) Plan(distanceMiles float64, stations []domain.FuelStation) ([]domain.FuelStop, domain.FuelSummary, error) {
	if len(stations) == 0 {
		return nil, domain.FuelSummary{}, domain.ErrNoStationsAvailable
	}

	sorted := make([]domain.FuelStation, len(stations))
	copy(sorted, stations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})

	stopCount := 0
	if distanceMiles > p.cfg.VehicleRangeMiles {
		stopCount = int(math.Ceil(distanceMiles/p.cfg.VehicleRangeMiles)) - 1
	}

	stops := make([]domain.FuelStop, 0, stopCount)
	var priceSum float64
	for i := 1; i <= stopCount; i++ {
		st := sorted[(i-1)%len(sorted)]
		price := round2(st.Price)
		stops = append(stops, domain.FuelStop{
			StopNumber:        i,
			StationName:       st.Name,
			Address:           st.Address,
			City:              st.City,
			State:             st.State,
			PricePerGallon:    price,
			DistanceFromStart: round2(float64(i) * p.cfg.VehicleRangeMiles),
		})
		// The average is taken over the rounded prices the client sees.
		priceSum += price
	}

	var avgPrice float64
	if stopCount > 0 {
		avgPrice = priceSum / float64(stopCount)
	} else {
		// Short routes still report a cost estimate priced off the
		// cheapest corner of the market.
		n := len(sorted)
		if n > 10 {
			n = 10
		}
		var sum float64
		for _, st := range sorted[:n] {
			sum += st.Price
		}
		avgPrice = sum / float64(n)
	}

	gallons := distanceMiles / p.cfg.MilesPerGallon
	summary := domain.FuelSummary{
		TotalGallons:  round2(gallons),
		AveragePrice:  round2(avgPrice),
		TotalFuelCost: round2(gallons * avgPrice),
	}
	return stops, summary, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
