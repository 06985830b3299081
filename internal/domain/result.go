package domain

import "time"

// OptimalTiming is the departure-time advice block of a plan result.
type OptimalTiming struct {
	Recommendation string
	Alternatives   []TimingAlternative
}

// AnalysisSource records where an analysis text came from, for the
// attribution line rendered under it.
type AnalysisSource struct {
	Source    string
	Model     string
	Timestamp time.Time
}

// RouteResult is the planning payload as supplied by a backend
// collaborator. Every field is optional; absent fields are synthesized
// locally during aggregation.
type RouteResult struct {
	BestRoute     string
	DepartureTime string
	TravelTime    string
	Distance      string
	AIAnalysis    string
	OptimalTiming *OptimalTiming
	RoutePoints   []Location
	DensityLevels map[string]DensityLevel
	Source        *AnalysisSource
}

// RenderableResult is the fully merged record handed to the presentation
// layer. It is constructed fresh per planning attempt and not retained.
type RenderableResult struct {
	BestRoute     string
	DepartureTime string
	TravelTime    string
	Distance      string
	AIAnalysis    string
	OptimalTiming OptimalTiming
	RoutePoints   []Location

	// DensityLevels come from the backend's analysis when it supplied
	// one, otherwise from the locally synthesized report.
	DensityLevels map[string]DensityLevel
}
