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
	"trip-planner-service/internal/services"
)

type AnalysisHandler struct {
	Planner *services.Planner
}

// Analyze returns the traffic analysis for an already-geocoded route.
// Analyzer failures never surface here; the planner falls back to the
// simulated report internally.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.AnalysisRequest

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
	if origin == "" || destination == "" ||
		req.OriginLat == nil || req.OriginLon == nil || req.DestLat == nil || req.DestLon == nil {
		writeError(w, r, http.StatusBadRequest, "origin, destination, and coordinates are required")
		return
	}

	analysis, err := h.Planner.AnalyzeRoute(r.Context(), services.PlanTripRequest{
		Origin:      origin,
		Destination: destination,
		OriginCoord: coordPair(req.OriginLat, req.OriginLon),
		DestCoord:   coordPair(req.DestLat, req.DestLon),
	})
	if errors.Is(err, services.ErrLocationNotFound) {
		writeError(w, r, http.StatusNotFound, "could not geocode one or both locations")
		return
	}
	if err != nil {
		log.Printf("route analysis failed: origin=%q destination=%q err=%v", origin, destination, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	levels := make(map[string]string, len(analysis.Levels))
	for area, level := range analysis.Levels {
		levels[area] = string(level)
	}

	res := dto.AnalysisResponse{
		HTMLContent:   analysis.HTML,
		DensityLevels: levels,
		Source:        analysis.Source.Source,
		Model:         analysis.Source.Model,
	}
	if !analysis.Source.Timestamp.IsZero() {
		res.Timestamp = analysis.Source.Timestamp.Format(time.RFC3339)
	}

	writeJSON(w, r, http.StatusOK, res)
}
