package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/samirrijal/fuelroute/internal/core/domain"
	"github.com/samirrijal/fuelroute/internal/core/ports"
	"github.com/samirrijal/fuelroute/internal/pkg/metrics"
)

// GeocodeService resolves free-text USA locations to coordinates. Results
// are cached for the lifetime of the process under the normalized query
// text, so repeated plans over the same endpoints cost one provider call.
type GeocodeService struct {
	provider ports.GeocodingProvider
	cache    ports.CacheService // optional distributed tier, may be nil
	logger   *slog.Logger

	mu       sync.Mutex
	resolved map[string]domain.GeoPoint
	inflight map[string]chan struct{}
}

func NewGeocodeService(provider ports.GeocodingProvider, cache ports.CacheService, logger *slog.Logger) *GeocodeService {
	return &GeocodeService{
		provider: provider,
		cache:    cache,
		logger:   logger,
		resolved: make(map[string]domain.GeoPoint),
		inflight: make(map[string]chan struct{}),
	}
}

// Resolve geocodes a location and validates it falls inside the supported
// USA region. Unresolvable input yields domain.ErrLocationNotFound and a
// resolvable point outside the region yields domain.ErrOutOfRegion.
func (s *GeocodeService) Resolve(ctx context.Context, location string) (domain.GeoPoint, error) {
	key := normalizeLocation(location)
	if key == "" {
		return domain.GeoPoint{}, domain.ErrLocationNotFound
	}

	for {
		s.mu.Lock()
		if p, ok := s.resolved[key]; ok {
			s.mu.Unlock()
			metrics.CacheHits.WithLabelValues("geocode").Inc()
			return p, nil
		}
		wait, busy := s.inflight[key]
		if !busy {
			wait = make(chan struct{})
			s.inflight[key] = wait
			s.mu.Unlock()
			break
		}
		s.mu.Unlock()

		// Another caller is resolving the same key. Wait for it and
		// re-check the cache; on its failure we fall through and issue
		// our own provider call.
		select {
		case <-wait:
		case <-ctx.Done():
			return domain.GeoPoint{}, ctx.Err()
		}
	}

	p, err := s.lookup(ctx, location, key)

	s.mu.Lock()
	if err == nil {
		s.resolved[key] = p
	}
	if wait, ok := s.inflight[key]; ok {
		close(wait)
		delete(s.inflight, key)
	}
	s.mu.Unlock()

	if err != nil {
		return domain.GeoPoint{}, err
	}
	return p, nil
}

// lookup resolves through the distributed cache and then the provider. The
// provider sees the caller's text as typed; key only addresses the caches.
func (s *GeocodeService) lookup(ctx context.Context, location, key string) (domain.GeoPoint, error) {
	metrics.CacheMisses.WithLabelValues("geocode").Inc()

	if s.cache != nil {
		cacheKey := "geocode:" + key
		if raw, err := s.cache.Get(ctx, cacheKey); err == nil && len(raw) > 0 {
			var p domain.GeoPoint
			if err := json.Unmarshal(raw, &p); err == nil {
				return p, nil
			}
		}
	}

	metrics.GeocoderProviderCalls.Inc()
	p, err := s.provider.Geocode(ctx, location)
	if err != nil {
		metrics.GeocoderFailures.WithLabelValues("not_found").Inc()
		s.logger.Warn("geocoding failed", "location", location, "error", err)
		return domain.GeoPoint{}, fmt.Errorf("geocode %q: %w", location, err)
	}

	if !domain.InSupportedRegion(p) {
		metrics.GeocoderFailures.WithLabelValues("out_of_region").Inc()
		s.logger.Warn("location outside supported region", "location", location, "lat", p.Lat, "lon", p.Lon)
		return domain.GeoPoint{}, fmt.Errorf("geocode %q: %w", location, domain.ErrOutOfRegion)
	}

	if s.cache != nil {
		if data, err := json.Marshal(p); err == nil {
			_ = s.cache.Set(ctx, "geocode:"+key, data, 86400)
		}
	}

	return p, nil
}

func normalizeLocation(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}
