package usecases

import (
	"strings"

	"github.com/samirrijal/fuelroute/internal/core/domain"
)

// stateFromLocation pulls a two-letter state code out of free-text input
// like "Denver, CO". The trailing comma-separated token counts only when
// it is exactly two characters after trimming; anything else yields "".
func stateFromLocation(location string) string {
	parts := strings.Split(location, ",")
	if len(parts) < 2 {
		return ""
	}
	last := strings.TrimSpace(parts[len(parts)-1])
	if len(last) != 2 {
		return ""
	}
	return strings.ToUpper(last)
}

// corridorStates expands the start and end states with their neighbors to
// approximate the set of states a route may traverse.
func corridorStates(startLocation, endLocation string) map[string]bool {
	states := make(map[string]bool)
	for _, loc := range []string{startLocation, endLocation} {
		state := stateFromLocation(loc)
		if state == "" {
			continue
		}
		states[state] = true
		for _, n := range domain.NeighboringStates(state) {
			states[n] = true
		}
	}
	return states
}

// filterByCorridor narrows stations to those in states along the route
// corridor. When no state can be derived from either endpoint, or the
// narrowing would leave nothing to plan with, the full catalog is kept.
func filterByCorridor(stations []domain.FuelStation, startLocation, endLocation string) []domain.FuelStation {
	states := corridorStates(startLocation, endLocation)
	if len(states) == 0 {
		return stations
	}

	var filtered []domain.FuelStation
	for _, st := range stations {
		if states[st.State] {
			filtered = append(filtered, st)
		}
	}
	if len(filtered) == 0 {
		return stations
	}
	return filtered
}
