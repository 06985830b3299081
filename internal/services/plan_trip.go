package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// ErrLocationNotFound marks a geocoding miss so the handler can reject
// the request instead of falling back to simulation.
var ErrLocationNotFound = errors.New("location not found")

// PlanTripRequest carries one planning attempt. Coordinates are optional;
// when present they take precedence over geocoding the text fields.
type PlanTripRequest struct {
	Origin        string
	Destination   string
	OriginCoord   *domain.Coordinates
	DestCoord     *domain.Coordinates
	PreferredDate string
	PreferredTime string
	Preference    domain.RoutePreference
}

// PlanTripResult bundles the merged record with the supporting data the
// API exposes alongside it.
type PlanTripResult struct {
	Render   domain.RenderableResult
	Patterns TrafficPatterns
	Source   domain.AnalysisSource
}

// Planner orchestrates geocoding, the routing collaborator, the analyzer
// and the local generators for one planning attempt.
type Planner struct {
	Geo    ports.Geocoder
	Routes ports.RouteProvider
	Agg    *Aggregator
	Rand   *rand.Rand
	Now    func() time.Time

	// AI is optional; without it (or when it fails) the analysis is
	// synthesized locally and attributed to "simulation".
	AI ports.Analyzer
}

func NewPlanner(geo ports.Geocoder, routes ports.RouteProvider, r *rand.Rand) *Planner {
	return &Planner{
		Geo:    geo,
		Routes: routes,
		Agg:    NewAggregator(r),
		Rand:   r,
		Now:    time.Now,
	}
}

// PlanTrip resolves both endpoints, fetches the road route and merges it
// with locally generated timing and density data.
func (p *Planner) PlanTrip(ctx context.Context, req PlanTripRequest) (_ PlanTripResult, err error) {
	defer obs.Time(ctx, "planner.PlanTrip")(&err)

	originCoord, err := p.resolve(ctx, req.Origin, req.OriginCoord)
	if err != nil {
		return PlanTripResult{}, fmt.Errorf("plan trip: resolve origin %q: %w", req.Origin, err)
	}

	destCoord, err := p.resolve(ctx, req.Destination, req.DestCoord)
	if err != nil {
		return PlanTripResult{}, fmt.Errorf("plan trip: resolve destination %q: %w", req.Destination, err)
	}

	route, err := p.Routes.GetRoute(ctx, originCoord, destCoord)
	if err != nil {
		return PlanTripResult{}, fmt.Errorf("plan trip: get route: %w", err)
	}

	now := p.Now()
	patterns := GenerateTrafficPatterns(p.Rand, now.Hour())
	optimal := OptimalDeparture(patterns)

	source := domain.AnalysisSource{Source: "simulation", Timestamp: now}

	backend := &domain.RouteResult{
		BestRoute:     DescribeRoute(req.Origin, req.Destination, route.RoadNumbers),
		DepartureTime: FormatHour(optimal.Hour),
		TravelTime:    FormatSeconds(route.TravelTimeSeconds),
		Distance:      fmt.Sprintf("%.2f km", float64(route.DistanceMeters)/1000),
		RoutePoints:   route.Points,
		Source:        &source,
	}

	if p.AI != nil {
		analysis, aiErr := p.AI.Analyze(ctx, ports.AnalysisRequest{
			Origin:      req.Origin,
			Destination: req.Destination,
			Preference:  req.Preference,
			TravelTime:  backend.TravelTime,
			DistanceKm:  float64(route.DistanceMeters) / 1000,
		})
		if aiErr != nil {
			log.Printf("ai analysis failed, using simulated analysis: err=%v", aiErr)
		} else {
			backend.AIAnalysis = analysis.HTML
			backend.DensityLevels = analysis.Levels
			source = analysis.Source
		}
	}

	return PlanTripResult{
		Render:   p.Agg.Aggregate(backend, req.Origin, req.Destination, req.Preference, req.PreferredTime),
		Patterns: patterns,
		Source:   source,
	}, nil
}

// Simulate produces the pure-local fallback result used when the routing
// collaborator is unavailable.
func (p *Planner) Simulate(req PlanTripRequest) PlanTripResult {
	patterns := GenerateTrafficPatterns(p.Rand, p.Now().Hour())
	return PlanTripResult{
		Render:   p.Agg.Aggregate(nil, req.Origin, req.Destination, req.Preference, req.PreferredTime),
		Patterns: patterns,
		Source:   domain.AnalysisSource{Source: "simulation", Timestamp: p.Now()},
	}
}

// AnalyzeRoute produces just the traffic analysis for a route: the
// analyzer's verdict when one is configured and reachable, the local
// density report otherwise. A failed route fetch is not fatal; the
// analyzer then reasons without travel-time facts.
func (p *Planner) AnalyzeRoute(ctx context.Context, req PlanTripRequest) (_ ports.Analysis, err error) {
	defer obs.Time(ctx, "planner.AnalyzeRoute")(&err)

	originCoord, err := p.resolve(ctx, req.Origin, req.OriginCoord)
	if err != nil {
		return ports.Analysis{}, fmt.Errorf("analyze route: resolve origin %q: %w", req.Origin, err)
	}

	destCoord, err := p.resolve(ctx, req.Destination, req.DestCoord)
	if err != nil {
		return ports.Analysis{}, fmt.Errorf("analyze route: resolve destination %q: %w", req.Destination, err)
	}

	aiReq := ports.AnalysisRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
		Preference:  req.Preference,
	}
	if route, routeErr := p.Routes.GetRoute(ctx, originCoord, destCoord); routeErr != nil {
		log.Printf("route fetch failed for analysis: err=%v", routeErr)
	} else {
		aiReq.TravelTime = FormatSeconds(route.TravelTimeSeconds)
		aiReq.DistanceKm = float64(route.DistanceMeters) / 1000
	}

	if p.AI != nil {
		analysis, aiErr := p.AI.Analyze(ctx, aiReq)
		if aiErr == nil {
			return analysis, nil
		}
		log.Printf("ai analysis failed, using simulated analysis: err=%v", aiErr)
	}

	report := AnalyzeDensity(p.Rand, req.Origin, req.Destination)
	return ports.Analysis{
		HTML:   report.HTML,
		Levels: report.LevelsByName(),
		Source: domain.AnalysisSource{Source: "simulation", Timestamp: p.Now()},
	}, nil
}

func (p *Planner) resolve(ctx context.Context, text string, coord *domain.Coordinates) (domain.Coordinates, error) {
	if coord != nil {
		return *coord, nil
	}

	loc, err := p.Geo.Search(ctx, text)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %v", ErrLocationNotFound, err)
	}
	return loc.Coordinates(), nil
}
