package domain

import "errors"

var (
	// ErrLocationNotFound means the geocoding provider returned no candidate
	// for the given text.
	ErrLocationNotFound = errors.New("location not found")

	// ErrOutOfRegion means the geocoded coordinate lies outside the supported
	// USA service regions.
	ErrOutOfRegion = errors.New("location is outside USA boundaries")

	// ErrDatasetNotFound means the fuel-price dataset could not be located at
	// any configured source.
	ErrDatasetNotFound = errors.New("fuel price dataset not found")

	// ErrNoStationsAvailable means fuel stops are required but the candidate
	// station pool is empty.
	ErrNoStationsAvailable = errors.New("no fuel stations available")
)
