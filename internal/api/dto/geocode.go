package dto

// GeocodeRequest is the JSON body of POST /api/geocode.
type GeocodeRequest struct {
	Location string `json:"location"`
}

// GeocodeResponse echoes the query alongside the resolved coordinates.
type GeocodeResponse struct {
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// DepartureResponse is the body of POST /api/optimal-departure: the
// best hour of the synthetic congestion profile plus the full profile
// for charting.
type DepartureResponse struct {
	OptimalDepartureTime string           `json:"optimal_departure_time"`
	CongestionFactor     float64          `json:"congestion_factor"`
	TravelTime           string           `json:"travel_time"`
	Patterns             PatternsResponse `json:"traffic_patterns"`
}
