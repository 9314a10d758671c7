package domain

// GeoPoint represents a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Bounds represents a geographic bounding box.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Contains reports whether the point lies within the box (inclusive).
func (b Bounds) Contains(p GeoPoint) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// Supported service regions. Planning covers the contiguous USA and Alaska;
// coordinates outside both boxes are rejected at geocode time.
var (
	ContiguousUSA = Bounds{MinLat: 24, MaxLat: 49, MinLon: -125, MaxLon: -66}
	Alaska        = Bounds{MinLat: 51, MaxLat: 71, MinLon: -180, MaxLon: -130}
)

// InSupportedRegion reports whether the point falls inside either service region.
func InSupportedRegion(p GeoPoint) bool {
	return ContiguousUSA.Contains(p) || Alaska.Contains(p)
}
