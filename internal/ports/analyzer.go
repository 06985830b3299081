package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// AnalysisRequest carries the route facts an analyzer reasons over.
type AnalysisRequest struct {
	Origin      string
	Destination string
	Preference  domain.RoutePreference

	// TravelTime is the display-form duration with current traffic.
	TravelTime string
	DistanceKm float64
}

// Analysis is one analyzer verdict: display markup, per-segment density
// levels and the source metadata for the attribution line.
type Analysis struct {
	HTML   string
	Levels map[string]domain.DensityLevel
	Source domain.AnalysisSource
}

// Analyzer produces a traffic analysis for a planned route.
// Implementations may call out to an external model; failures are
// recoverable and the caller substitutes a simulated analysis.
type Analyzer interface {
	Analyze(ctx context.Context, req AnalysisRequest) (Analysis, error)
}
