package dto

// PlanTripRequest is the JSON body of POST /api/plan-trip. The
// coordinate fields are optional; when a lat/lon pair is present it is
// used directly and the matching text field is kept for display only.
type PlanTripRequest struct {
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	PreferredDate   string   `json:"preferred_date"`
	PreferredTime   string   `json:"preferred_time"`
	RoutePreference string   `json:"route_preference"`
	OriginLat       *float64 `json:"origin_lat,omitempty"`
	OriginLon       *float64 `json:"origin_lon,omitempty"`
	DestLat         *float64 `json:"dest_lat,omitempty"`
	DestLon         *float64 `json:"dest_lon,omitempty"`
}

// RoutePoint is one vertex of the returned route geometry.
type RoutePoint struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name,omitempty"`
}

// TimingAlternative mirrors one rated departure suggestion.
type TimingAlternative struct {
	Time        string `json:"time"`
	Description string `json:"description"`
	Rating      string `json:"rating"`
}

// OptimalTiming is the departure advice block of a plan response.
type OptimalTiming struct {
	Recommendation string              `json:"recommendation"`
	Alternatives   []TimingAlternative `json:"alternatives"`
}

// PlanTripResponse is the merged planning record returned to clients.
// Field names follow the rendering layer's expectations, hence the
// camelCase keys.
type PlanTripResponse struct {
	BestRoute     string            `json:"bestRoute"`
	DepartureTime string            `json:"departureTime"`
	TravelTime    string            `json:"travelTime"`
	Distance      string            `json:"distance"`
	AIAnalysis    string            `json:"aiAnalysis"`
	OptimalTiming OptimalTiming     `json:"optimalTiming"`
	RoutePoints   []RoutePoint      `json:"routePoints,omitempty"`
	DensityLevels map[string]string `json:"densityLevels,omitempty"`
	AISource      string            `json:"aiSource"`
	AIModel       string            `json:"aiModel,omitempty"`
	AITimestamp   string            `json:"aiTimestamp"`
	Patterns      *PatternsResponse `json:"trafficPatterns,omitempty"`
}

// PatternsResponse is the synthetic day-long congestion profile.
type PatternsResponse struct {
	HourlyData       []HourPattern `json:"hourly_data"`
	CurrentHour      int           `json:"current_hour"`
	HighlightedHours []int         `json:"highlighted_hours"`
}

// HourPattern is the congestion estimate for one hour of the day.
type HourPattern struct {
	Hour             int     `json:"hour"`
	CongestionFactor float64 `json:"congestion_factor"`
	TravelTime       string  `json:"travel_time"`
}
