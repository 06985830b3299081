package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/services"
)

// DefaultFallbackDelay is the pause before a simulated answer when the
// routing collaborator fails, standing in for "processing" time.
const DefaultFallbackDelay = 2000 * time.Millisecond

type PlanHandler struct {
	Planner *services.Planner

	// FallbackDelay is how long the handler pauses before answering
	// with simulated data after a routing failure, so the client-side
	// status indicator stays readable.
	FallbackDelay time.Duration
}

// PlanTrip resolves both endpoints, asks the routing collaborator for
// the road route and returns the merged planning record. Routing
// failures degrade to a fully simulated answer instead of an error;
// geocoding failures do not, since the client can correct the input.
func (h *PlanHandler) PlanTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanTripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	if origin == "" || destination == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	svcReq := services.PlanTripRequest{
		Origin:        origin,
		Destination:   destination,
		OriginCoord:   coordPair(req.OriginLat, req.OriginLon),
		DestCoord:     coordPair(req.DestLat, req.DestLon),
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Preference:    domain.RoutePreference(req.RoutePreference),
	}

	result, err := h.Planner.PlanTrip(r.Context(), svcReq)
	if errors.Is(err, services.ErrLocationNotFound) {
		writeError(w, r, http.StatusNotFound, "could not geocode one or both locations")
		return
	}
	if err != nil {
		log.Printf("plan trip failed, serving simulation: origin=%q destination=%q err=%v",
			origin, destination, err)

		select {
		case <-time.After(h.FallbackDelay):
		case <-r.Context().Done():
			return
		}
		result = h.Planner.Simulate(svcReq)
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(result))
}

func coordPair(lat, lon *float64) *domain.Coordinates {
	if lat == nil || lon == nil {
		return nil
	}
	return &domain.Coordinates{Lat: *lat, Lon: *lon}
}

func toPlanResponse(result services.PlanTripResult) dto.PlanTripResponse {
	render := result.Render

	alts := make([]dto.TimingAlternative, 0, len(render.OptimalTiming.Alternatives))
	for _, a := range render.OptimalTiming.Alternatives {
		alts = append(alts, dto.TimingAlternative{
			Time:        a.Time,
			Description: a.Description,
			Rating:      string(a.Rating),
		})
	}

	points := make([]dto.RoutePoint, 0, len(render.RoutePoints))
	for _, p := range render.RoutePoints {
		points = append(points, dto.RoutePoint{Lat: p.Lat, Lon: p.Lon, Name: p.Name})
	}

	var levels map[string]string
	if len(render.DensityLevels) > 0 {
		levels = make(map[string]string, len(render.DensityLevels))
		for name, level := range render.DensityLevels {
			levels[name] = string(level)
		}
	}

	patterns := toPatternsResponse(result.Patterns)

	return dto.PlanTripResponse{
		BestRoute:     render.BestRoute,
		DepartureTime: render.DepartureTime,
		TravelTime:    render.TravelTime,
		Distance:      render.Distance,
		AIAnalysis:    render.AIAnalysis,
		OptimalTiming: dto.OptimalTiming{
			Recommendation: render.OptimalTiming.Recommendation,
			Alternatives:   alts,
		},
		RoutePoints:   points,
		DensityLevels: levels,
		AISource:      result.Source.Source,
		AIModel:       result.Source.Model,
		AITimestamp:   result.Source.Timestamp.Format(time.RFC3339),
		Patterns:      &patterns,
	}
}

func toPatternsResponse(p services.TrafficPatterns) dto.PatternsResponse {
	hours := make([]dto.HourPattern, 0, len(p.HourlyData))
	for _, h := range p.HourlyData {
		hours = append(hours, dto.HourPattern{
			Hour:             h.Hour,
			CongestionFactor: h.CongestionFactor,
			TravelTime:       h.TravelTime,
		})
	}

	return dto.PatternsResponse{
		HourlyData:       hours,
		CurrentHour:      p.CurrentHour,
		HighlightedHours: p.HighlightedHours,
	}
}
