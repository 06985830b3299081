package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/services"
)

type DepartureHandler struct {
	Rand *rand.Rand
	Now  func() time.Time
}

// OptimalDeparture returns the least congested hour of the synthetic
// day profile together with the full profile for charting. The body is
// ignored; the profile is anchored to the server's current hour.
func (h *DepartureHandler) OptimalDeparture(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}

	patterns := services.GenerateTrafficPatterns(h.Rand, now.Hour())
	best := services.OptimalDeparture(patterns)

	writeJSON(w, r, http.StatusOK, dto.DepartureResponse{
		OptimalDepartureTime: services.FormatHour(best.Hour),
		CongestionFactor:     best.CongestionFactor,
		TravelTime:           best.TravelTime,
		Patterns:             toPatternsResponse(patterns),
	})
}
