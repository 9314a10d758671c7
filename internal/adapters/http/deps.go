package http

import (
	"github.com/nats-io/nats.go"
	"github.com/samirrijal/fuelroute/internal/adapters/postgres"
	"github.com/samirrijal/fuelroute/internal/adapters/valkey"
	"github.com/samirrijal/fuelroute/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Plans   *usecases.PlanService
	Catalog *usecases.CatalogService
	NATS    *nats.Conn
	DB      *postgres.DB
	Cache   *valkey.Cache
}
