package services

import (
	"fmt"
	"math/rand"
	"strings"

	"trip-planner-service/internal/domain"
)

// DefaultDepartureDisplay is shown when neither the backend nor the user
// supplied a departure time.
const DefaultDepartureDisplay = "08:30 AM"

// Aggregator merges a backend planning payload with locally generated
// fallback data into a renderable result. Backend data always wins;
// the simulated generators only fill the gaps.
type Aggregator struct {
	rand    *rand.Rand
	analyze func(r *rand.Rand, origin, destination string) DensityReport
}

func NewAggregator(r *rand.Rand) *Aggregator {
	return &Aggregator{rand: r, analyze: AnalyzeDensity}
}

// Aggregate builds the final result record for one planning attempt.
// backend may be nil (pure local fallback).
func (a *Aggregator) Aggregate(
	backend *domain.RouteResult,
	origin string,
	destination string,
	pref domain.RoutePreference,
	preferredTime string,
) domain.RenderableResult {
	var out domain.RenderableResult

	// Departure-time advice: backend block verbatim when non-empty,
	// otherwise the preference catalog.
	if backend != nil && backend.OptimalTiming != nil && len(backend.OptimalTiming.Alternatives) > 0 {
		out.OptimalTiming = *backend.OptimalTiming
	} else {
		out.OptimalTiming = OptimalTiming(pref)
	}

	// Analysis markup: wrap plain backend text in a paragraph, keep
	// markup untouched, or synthesize a density report.
	if backend != nil && backend.AIAnalysis != "" {
		html := backend.AIAnalysis
		if !strings.HasPrefix(html, "<") {
			html = "<p>" + html + "</p>"
		}
		out.AIAnalysis = html
		out.DensityLevels = backend.DensityLevels
	} else {
		report := a.analyze(a.rand, origin, destination)
		out.AIAnalysis = report.HTML
		out.DensityLevels = report.LevelsByName()
	}

	if backend != nil && backend.Source != nil {
		out.AIAnalysis += attributionLine(*backend.Source)
	}

	if backend != nil && backend.BestRoute != "" {
		out.BestRoute = backend.BestRoute
	} else {
		out.BestRoute = BestRoute(origin, pref, destination)
	}

	if backend != nil && backend.DepartureTime != "" {
		out.DepartureTime = backend.DepartureTime
	} else if preferredTime != "" {
		out.DepartureTime = preferredTime
	} else {
		out.DepartureTime = DefaultDepartureDisplay
	}

	if backend != nil && backend.TravelTime != "" {
		out.TravelTime = backend.TravelTime
	} else {
		out.TravelTime = TravelTime(pref)
	}

	if backend != nil {
		out.Distance = backend.Distance
		out.RoutePoints = backend.RoutePoints
	}

	return out
}

// sourceLabels maps known analysis source identifiers to display names;
// unknown identifiers are shown raw.
var sourceLabels = map[string]string{
	"ibm_watsonx": "IBM Watsonx AI",
	"simulation":  "Simulation",
}

func attributionLine(src domain.AnalysisSource) string {
	label, ok := sourceLabels[src.Source]
	if !ok {
		label = src.Source
	}

	var b strings.Builder
	b.WriteString(`<div class="ai-source-info"><p class="ai-source-text"><small><strong>AI Source:</strong> `)
	b.WriteString(label)
	if src.Model != "" {
		fmt.Fprintf(&b, " | <strong>Model:</strong> %s", src.Model)
	}
	if !src.Timestamp.IsZero() {
		fmt.Fprintf(&b, " | Generated at: %s", src.Timestamp.Local().Format(attributionTimeLayout))
	}
	b.WriteString("</small></p></div>")
	return b.String()
}

const attributionTimeLayout = "3:04:05 PM"
