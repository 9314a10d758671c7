package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samirrijal/fuelroute/internal/core/domain"
)

// PaginatedResponse wraps list results with pagination metadata.
type PaginatedResponse struct {
	Data       []domain.FuelStation `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

// Pagination contains offset-based pagination info.
type Pagination struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Total  int `json:"total"`
}

// paginateStations slices a station list by offset/limit and returns the
// page together with its metadata. Offsets past the end yield an empty page.
func paginateStations(stations []domain.FuelStation, offset, limit int) ([]domain.FuelStation, Pagination) {
	pg := Pagination{Offset: offset, Limit: limit, Total: len(stations)}
	if offset >= len(stations) {
		return nil, pg
	}
	end := offset + limit
	if end > len(stations) {
		end = len(stations)
	}
	return stations[offset:end], pg
}

// SetLinkHeaders adds RFC 8288 Link headers plus X-Total-Count for a
// paginated response, relative to the current request path.
func SetLinkHeaders(c *fiber.Ctx, p Pagination) {
	rel := func(offset int, name string) string {
		return fmt.Sprintf(`<%s?offset=%d&limit=%d>; rel=%q`, c.Path(), offset, p.Limit, name)
	}

	links := []string{rel(0, "first")}
	if p.Offset > 0 {
		prev := p.Offset - p.Limit
		if prev < 0 {
			prev = 0
		}
		links = append(links, rel(prev, "prev"))
	}
	if p.Offset+p.Limit < p.Total {
		links = append(links, rel(p.Offset+p.Limit, "next"))
	}
	last := p.Total - p.Limit
	if last < 0 {
		last = 0
	}
	links = append(links, rel(last, "last"))

	c.Set("Link", strings.Join(links, ", "))
	c.Set("X-Total-Count", strconv.Itoa(p.Total))
}
