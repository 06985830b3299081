package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"trip-planner-service/internal/adapters/analysis"
	"trip-planner-service/internal/adapters/geocode"
	"trip-planner-service/internal/adapters/routing"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

func newTestPlanner(provider *routing.MockRouteProvider) *Planner {
	geo := geocode.NewMockGeocoder([]domain.Location{
		{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777},
		{Name: "Pune", Lat: 18.5204, Lon: 73.8567},
	})

	p := NewPlanner(geo, provider, rand.New(rand.NewSource(7)))
	p.Now = func() time.Time { return time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC) }
	return p
}

func fixedRoute() *routing.MockRouteProvider {
	return &routing.MockRouteProvider{
		Info: ports.RouteInfo{
			TravelTimeSeconds: 9900,
			DistanceMeters:    148000,
			RoadNumbers:       []string{"NH-48"},
		},
	}
}

func TestPlanTripUsesAnalyzer(t *testing.T) {
	verdict := ports.Analysis{
		HTML: "<p>Expect heavy traffic near toll plazas.</p>",
		Levels: map[string]domain.DensityLevel{
			"Major Intersections": domain.DensityHigh,
			"Highway Segments":    domain.DensityMedium,
			"Urban Streets":       domain.DensityLow,
		},
		Source: domain.AnalysisSource{
			Source:    analysis.SourceWatsonx,
			Model:     "meta-llama/llama-3-3-70b-instruct",
			Timestamp: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		},
	}

	p := newTestPlanner(fixedRoute())
	p.AI = &analysis.MockAnalyzer{Result: verdict}

	result, err := p.PlanTrip(context.Background(), PlanTripRequest{
		Origin:      "Mumbai",
		Destination: "Pune",
		Preference:  domain.PreferenceFastest,
	})
	if err != nil {
		t.Fatalf("plan trip: %v", err)
	}

	if !strings.HasPrefix(result.Render.AIAnalysis, verdict.HTML) {
		t.Fatalf("AIAnalysis = %q, want analyzer markup first", result.Render.AIAnalysis)
	}
	if !strings.Contains(result.Render.AIAnalysis, "IBM Watsonx AI") {
		t.Fatalf("attribution line missing: %q", result.Render.AIAnalysis)
	}
	if !strings.Contains(result.Render.AIAnalysis, verdict.Source.Model) {
		t.Fatalf("model missing from attribution: %q", result.Render.AIAnalysis)
	}
	if result.Source.Source != analysis.SourceWatsonx {
		t.Fatalf("Source = %q, want %q", result.Source.Source, analysis.SourceWatsonx)
	}
	if result.Render.DensityLevels["Urban Streets"] != domain.DensityLow {
		t.Fatalf("analyzer density levels not passed through: %v", result.Render.DensityLevels)
	}
}

func TestPlanTripAnalyzerFailureFallsBackToSimulation(t *testing.T) {
	p := newTestPlanner(fixedRoute())
	p.AI = &analysis.MockAnalyzer{Err: analysis.ErrAnalyzerDown}

	result, err := p.PlanTrip(context.Background(), PlanTripRequest{
		Origin:      "Mumbai",
		Destination: "Pune",
		Preference:  domain.PreferenceDefault,
	})
	if err != nil {
		t.Fatalf("plan trip: %v", err)
	}

	if result.Source.Source != "simulation" {
		t.Fatalf("Source = %q, want simulation", result.Source.Source)
	}
	if !strings.Contains(result.Render.AIAnalysis, "Simulation") {
		t.Fatalf("attribution should name the simulation: %q", result.Render.AIAnalysis)
	}
	if len(result.Render.DensityLevels) != 3 {
		t.Fatalf("expected locally synthesized levels, got %v", result.Render.DensityLevels)
	}
}

func TestPlanTripWithoutAnalyzerStaysSimulated(t *testing.T) {
	p := newTestPlanner(fixedRoute())

	result, err := p.PlanTrip(context.Background(), PlanTripRequest{
		Origin:      "Mumbai",
		Destination: "Pune",
	})
	if err != nil {
		t.Fatalf("plan trip: %v", err)
	}
	if result.Source.Source != "simulation" {
		t.Fatalf("Source = %q, want simulation", result.Source.Source)
	}
}

func TestAnalyzeRoutePrefersAnalyzer(t *testing.T) {
	verdict := ports.Analysis{
		HTML:   "<p>Light traffic expected.</p>",
		Levels: map[string]domain.DensityLevel{"Urban Streets": domain.DensityLow},
		Source: domain.AnalysisSource{Source: analysis.SourceWatsonx},
	}

	p := newTestPlanner(fixedRoute())
	p.AI = &analysis.MockAnalyzer{Result: verdict}

	got, err := p.AnalyzeRoute(context.Background(), PlanTripRequest{
		Origin:      "Mumbai",
		Destination: "Pune",
	})
	if err != nil {
		t.Fatalf("analyze route: %v", err)
	}
	if got.HTML != verdict.HTML || got.Source.Source != analysis.SourceWatsonx {
		t.Fatalf("got %+v, want analyzer verdict", got)
	}
}

func TestAnalyzeRouteFallsBackToDensityReport(t *testing.T) {
	p := newTestPlanner(&routing.MockRouteProvider{Err: routing.ErrRoutingDown})
	p.AI = &analysis.MockAnalyzer{Err: analysis.ErrAnalyzerDown}

	got, err := p.AnalyzeRoute(context.Background(), PlanTripRequest{
		Origin:      "Mumbai",
		Destination: "Pune",
	})
	if err != nil {
		t.Fatalf("analyze route: %v", err)
	}
	if got.Source.Source != "simulation" {
		t.Fatalf("Source = %q, want simulation", got.Source.Source)
	}
	if len(got.Levels) != 3 || !strings.Contains(got.HTML, "Mumbai") {
		t.Fatalf("expected local density report, got %+v", got)
	}
}

func TestAnalyzeRouteUnknownLocation(t *testing.T) {
	p := newTestPlanner(fixedRoute())

	_, err := p.AnalyzeRoute(context.Background(), PlanTripRequest{
		Origin:      "Atlantis",
		Destination: "Pune",
	})
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("err = %v, want ErrLocationNotFound", err)
	}
}
