package geospatial

import "github.com/samirrijal/fuelroute/internal/core/domain"

// DefaultMaxGeometryPoints bounds the polyline size returned to clients.
const DefaultMaxGeometryPoints = 30

// Simplify reduces a dense polyline to at most maxPoints representative
// points by even sampling. The first and last points are always retained and
// the original order is preserved. Inputs at or under the limit are returned
// unchanged.
func Simplify(points []domain.GeoPoint, maxPoints int) []domain.GeoPoint {
	if maxPoints < 3 || len(points) <= maxPoints {
		return points
	}

	simplified := make([]domain.GeoPoint, 0, maxPoints)
	simplified = append(simplified, points[0])

	step := len(points) / (maxPoints - 2)
	for i := step; i < len(points)-1 && len(simplified) < maxPoints-1; i += step {
		simplified = append(simplified, points[i])
	}

	return append(simplified, points[len(points)-1])
}
