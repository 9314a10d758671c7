package stationcsv

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/samirrijal/fuelroute/internal/core/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fuel-prices.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAllParsesStations(t *testing.T) {
	path := writeDataset(t, `OPIS Truckstop ID,Truckstop Name,Address,City,State,Rack ID,Retail Price
1,Pilot Travel Center,I-70 Exit 12,Topeka,KS,100,3.159
2,Loves Travel Stop,I-40 Exit 20,Amarillo,tx,101,3.049
`)

	repo := New([]string{path}, testLogger())
	got, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 stations, got %d", len(got))
	}
	if got[0].Name != "Pilot Travel Center" || got[0].State != "KS" || got[0].Price != 3.159 {
		t.Errorf("unexpected first station %+v", got[0])
	}
	if got[1].State != "TX" {
		t.Errorf("state codes must be uppercased, got %q", got[1].State)
	}
}

func TestLoadAllSkipsMalformedRows(t *testing.T) {
	path := writeDataset(t, `Truckstop Name,Address,City,State,Retail Price
Good Stop,I-80,Omaha,NE,3.25
,I-35,Wichita,KS,3.10
Bad Price,I-90,Billings,MT,abc
No State,I-10,Houston,,3.00
Short Row,I-55
Another Good,I-25,Denver,CO,3.40
`)

	repo := New([]string{path}, testLogger())
	got, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 valid stations, got %d", len(got))
	}
	if got[0].Name != "Good Stop" || got[1].Name != "Another Good" {
		t.Errorf("unexpected stations %q, %q", got[0].Name, got[1].Name)
	}
}

func TestLoadAllTriesCandidatePathsInOrder(t *testing.T) {
	path := writeDataset(t, `Truckstop Name,Address,City,State,Retail Price
Only Stop,I-94,Fargo,ND,3.35
`)

	repo := New([]string{"/nonexistent/fuel.csv", path}, testLogger())
	got, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 station, got %d", len(got))
	}
}

func TestLoadAllDatasetNotFound(t *testing.T) {
	repo := New([]string{"/nonexistent/a.csv", "/nonexistent/b.csv"}, testLogger())
	_, err := repo.LoadAll(context.Background())
	if !errors.Is(err, domain.ErrDatasetNotFound) {
		t.Errorf("expected ErrDatasetNotFound, got %v", err)
	}
}

func TestLoadAllMissingColumn(t *testing.T) {
	path := writeDataset(t, `Name,Address,City,State,Price
X,Y,Z,TX,3.00
`)

	repo := New([]string{path}, testLogger())
	if _, err := repo.LoadAll(context.Background()); err == nil {
		t.Error("expected error for missing required columns")
	}
}
