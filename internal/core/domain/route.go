package domain

// RouteInfo is a driving route between two coordinates. It is created fresh
// per request and never persisted.
type RouteInfo struct {
	// DistanceMiles is the total driving distance.
	DistanceMiles float64 `json:"distance_miles"`
	// Geometry is the route polyline, ordered from start to end. It always
	// holds at least the two endpoints.
	Geometry []GeoPoint `json:"geometry"`
	// Approximated is true when the routing provider was unavailable and the
	// distance is a great-circle estimate scaled by a road-circuity factor.
	Approximated bool `json:"approximated,omitempty"`
}

// RouteSummary is the client-facing view of a planned route.
type RouteSummary struct {
	Start         string     `json:"start"`
	End           string     `json:"end"`
	DistanceMiles float64    `json:"distance_miles"`
	Geometry      []GeoPoint `json:"geometry"`
}

// RoutePlan is the full planning result: the route, the chosen fuel stops,
// and the aggregate fuel cost. Request-scoped; discarded after the response.
type RoutePlan struct {
	Route     RouteSummary `json:"route"`
	FuelStops []FuelStop   `json:"fuel_stops"`
	Summary   FuelSummary  `json:"fuel_summary"`
}
