package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/samirrijal/fuelroute/internal/core/domain"
	"github.com/samirrijal/fuelroute/internal/core/usecases"
)

const locationHint = `Use format: "City, State" within USA (e.g., "Denver, CO")`

// PlanRouteHandler computes a fuel-optimized route between two locations.
func PlanRouteHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body map[string]interface{}
		if err := c.BodyParser(&body); err != nil {
			return errBadRequest(c, "invalid request body",
				`Example: {"start_location": "Los Angeles, CA", "end_location": "Denver, CO"}`)
		}

		start, startOK := body["start_location"].(string)
		end, endOK := body["end_location"].(string)
		if body["start_location"] != nil && !startOK || body["end_location"] != nil && !endOK {
			return errBadRequest(c, "locations must be text strings", locationHint)
		}
		if start == "" || end == "" {
			return errBadRequest(c, "both start_location and end_location are required",
				`Example: {"start_location": "Los Angeles, CA", "end_location": "Denver, CO"}`)
		}

		plan, err := deps.Plans.PlanRoute(c.Context(), start, end)
		if err != nil {
			var locErr *usecases.LocationError
			switch {
			case errors.As(err, &locErr):
				msg := "could not geocode " + locErr.Field + ": " + locErr.Location
				if errors.Is(err, domain.ErrOutOfRegion) {
					msg = locErr.Field + " is outside the supported USA region: " + locErr.Location
				}
				return errBadRequest(c, msg, locationHint)
			case errors.Is(err, domain.ErrDatasetNotFound):
				return errInternal(c, "fuel price dataset is not available")
			case errors.Is(err, domain.ErrNoStationsAvailable):
				return errInternal(c, "no fuel stations available for planning")
			default:
				return errInternal(c, err.Error())
			}
		}

		return c.JSON(plan)
	}
}

// ListStationsHandler returns catalog stations, optionally filtered by state.
func ListStationsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			stations []domain.FuelStation
			err      error
		)
		if state := c.Query("state"); state != "" {
			if len(state) != 2 {
				return errBadRequest(c, "state must be a two-letter code", `Example: ?state=CO`)
			}
			stations, err = deps.Catalog.StationsByState(c.Context(), state)
		} else {
			stations, err = deps.Catalog.Stations(c.Context())
		}
		if err != nil {
			if errors.Is(err, domain.ErrDatasetNotFound) {
				return errInternal(c, "fuel price dataset is not available")
			}
			return errInternal(c, err.Error())
		}

		// Apply offset/limit pagination on the full list
		offset := c.QueryInt("offset", 0)
		limit := c.QueryInt("limit", 100)
		if offset < 0 {
			offset = 0
		}
		if limit <= 0 || limit > 500 {
			limit = 100
		}

		page, pg := paginateStations(stations, offset, limit)
		SetLinkHeaders(c, pg)
		return c.JSON(PaginatedResponse{Data: page, Pagination: pg})
	}
}

// CheapestStationsHandler returns the lowest-priced stations in the catalog.
func CheapestStationsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 10)
		if limit <= 0 || limit > 100 {
			limit = 10
		}
		state := c.Query("state")
		if state != "" && len(state) != 2 {
			return errBadRequest(c, "state must be a two-letter code", `Example: ?state=CO`)
		}

		stations, err := deps.Catalog.CheapestStations(c.Context(), state, limit)
		if err != nil {
			if errors.Is(err, domain.ErrDatasetNotFound) {
				return errInternal(c, "fuel price dataset is not available")
			}
			return errInternal(c, err.Error())
		}
		return c.JSON(stations)
	}
}

// DatasetStats holds statistics about the loaded fuel price dataset.
type DatasetStats struct {
	Stations int            `json:"stations"`
	States   int            `json:"states"`
	ByState  map[string]int `json:"by_state,omitempty"`
}

// DatasetStatsHandler returns station counts from the catalog.
func DatasetStatsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stations, err := deps.Catalog.Stations(c.Context())
		if err != nil {
			if errors.Is(err, domain.ErrDatasetNotFound) {
				return errInternal(c, "fuel price dataset is not available")
			}
			return errInternal(c, err.Error())
		}

		byState := make(map[string]int)
		for _, s := range stations {
			byState[s.State]++
		}

		c.Set("Cache-Control", "public, max-age=60")
		return c.JSON(DatasetStats{
			Stations: len(stations),
			States:   len(byState),
			ByState:  byState,
		})
	}
}
