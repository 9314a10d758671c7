// Package stationcsv loads the fuel price dataset from a CSV file.
package stationcsv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/samirrijal/fuelroute/internal/core/domain"
)

// Column headers as shipped in the OPIS truckstop export.
const (
	colName    = "Truckstop Name"
	colAddress = "Address"
	colCity    = "City"
	colState   = "State"
	colPrice   = "Retail Price"
)

// Repo reads stations from the first readable CSV among its candidate
// paths. Rows missing a required field or with a non-numeric price are
// skipped.
type Repo struct {
	paths  []string
	logger *slog.Logger
}

func New(paths []string, logger *slog.Logger) *Repo {
	return &Repo{paths: paths, logger: logger}
}

func (r *Repo) LoadAll(ctx context.Context) ([]domain.FuelStation, error) {
	for _, path := range r.paths {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		defer f.Close()

		stations, err := r.parse(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		r.logger.Info("fuel price dataset loaded", "path", path, "stations", len(stations))
		return stations, nil
	}
	return nil, domain.ErrDatasetNotFound
}

func (r *Repo) parse(ctx context.Context, f io.Reader) ([]domain.FuelStation, error) {
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colName, colAddress, colCity, colState, colPrice} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var stations []domain.FuelStation
	skipped := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		station, ok := rowToStation(record, idx)
		if !ok {
			skipped++
			continue
		}
		stations = append(stations, station)
	}

	if skipped > 0 {
		r.logger.Warn("skipped malformed dataset rows", "skipped", skipped)
	}
	return stations, nil
}

func rowToStation(record []string, idx map[string]int) (domain.FuelStation, bool) {
	field := func(col string) string {
		i := idx[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field(colName)
	state := field(colState)
	priceText := field(colPrice)
	if name == "" || state == "" || priceText == "" {
		return domain.FuelStation{}, false
	}

	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		return domain.FuelStation{}, false
	}

	return domain.FuelStation{
		Name:    name,
		Address: field(colAddress),
		City:    field(colCity),
		State:   strings.ToUpper(state),
		Price:   price,
	}, true
}
