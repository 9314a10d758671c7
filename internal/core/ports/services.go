package ports

import (
	"context"

	"github.com/samirrijal/fuelroute/internal/core/domain"
)

// GeocodingProvider resolves free-text locations to coordinates.
// Implementations return domain.ErrLocationNotFound when the provider has no
// candidate; region validation is the caller's job.
type GeocodingProvider interface {
	Geocode(ctx context.Context, location string) (domain.GeoPoint, error)
}

// RouteProvider computes a driving route between two coordinates.
type RouteProvider interface {
	Route(ctx context.Context, start, end domain.GeoPoint) (*domain.RouteInfo, error)
}

// CacheService provides read-through caching.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	PublishRoutePlanned(ctx context.Context, plan *domain.RoutePlan) error
}
