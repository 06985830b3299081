package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/ports"
)

type GeocodeHandler struct {
	Geo ports.Geocoder
}

// Geocode resolves a free-text place query to coordinates. Used by the
// client to validate typed locations before planning.
func (h *GeocodeHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.GeocodeRequest

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

	query := strings.TrimSpace(req.Location)
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "location is required")
		return
	}

	loc, err := h.Geo.Search(r.Context(), query)
	if err != nil {
		log.Printf("geocode failed: query=%q err=%v", query, err)
		writeError(w, r, http.StatusNotFound, "Location not found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.GeocodeResponse{
		Location:  query,
		Latitude:  loc.Lat,
		Longitude: loc.Lon,
		Address:   loc.Name,
	})
}
