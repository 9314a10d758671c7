package domain

// FuelStation is one row of the truck-stop price dataset. The dataset is
// static reference data: loaded once, never mutated.
type FuelStation struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"` // two-letter code, e.g. "CO"
	Price   float64 `json:"price"` // retail price per gallon, USD
}

// FuelStop is a single planned refueling stop along a route.
type FuelStop struct {
	StopNumber        int     `json:"stop_number"`
	StationName       string  `json:"station_name"`
	Address           string  `json:"address"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	PricePerGallon    float64 `json:"price_per_gallon"`
	DistanceFromStart float64 `json:"distance_from_start"` // miles
}

// FuelSummary aggregates the fuel economics of a planned route.
type FuelSummary struct {
	TotalGallons  float64 `json:"total_gallons_needed"`
	AveragePrice  float64 `json:"average_price_per_gallon"`
	TotalFuelCost float64 `json:"total_fuel_cost"`
}
