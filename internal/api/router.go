package api

import (
	"math/rand"
	"net/http"
	"time"

	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(planner *services.Planner, geo ports.Geocoder, fallbackDelay time.Duration, r *rand.Rand) http.Handler {
	mux := http.NewServeMux()

	planHandler := &handlers.PlanHandler{
		Planner:       planner,
		FallbackDelay: fallbackDelay,
	}
	geoHandler := &handlers.GeocodeHandler{Geo: geo}
	analysisHandler := &handlers.AnalysisHandler{Planner: planner}
	departureHandler := &handlers.DepartureHandler{Rand: r}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/plan-trip", planHandler.PlanTrip)
	mux.HandleFunc("/api/geocode", geoHandler.Geocode)
	mux.HandleFunc("/api/ai-analysis", analysisHandler.Analyze)
	mux.HandleFunc("/api/optimal-departure", departureHandler.OptimalDeparture)

	return loggingMiddleware(mux)
}
