package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trip-planner-service/internal/adapters/geocode"
	"trip-planner-service/internal/adapters/routing"
	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

func testPlanner(provider *routing.MockRouteProvider) *services.Planner {
	geo := geocode.NewMockGeocoder([]domain.Location{
		{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777},
		{Name: "Pune", Lat: 18.5204, Lon: 73.8567},
	})

	p := services.NewPlanner(geo, provider, rand.New(rand.NewSource(1)))
	p.Now = func() time.Time { return time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC) }
	return p
}

func postPlan(t *testing.T, h *PlanHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/plan-trip", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.PlanTrip(rec, req)
	return rec
}

func TestPlanTripSuccess(t *testing.T) {
	provider := &routing.MockRouteProvider{
		Info: ports.RouteInfo{
			TravelTimeSeconds: 9900,
			DistanceMeters:    148000,
			RoadNumbers:       []string{"NH-48"},
		},
	}
	h := &PlanHandler{Planner: testPlanner(provider)}

	rec := postPlan(t, h, `{"origin":"Mumbai","destination":"Pune","route_preference":"fastest"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res dto.PlanTripResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.BestRoute == "" || res.TravelTime == "" || res.Distance == "" {
		t.Fatalf("incomplete response: %+v", res)
	}
	if res.AISource != "simulation" {
		t.Fatalf("AISource = %q, want simulation", res.AISource)
	}
	if len(res.RoutePoints) == 0 {
		t.Fatal("expected route points")
	}
	if res.Patterns == nil || len(res.Patterns.HourlyData) != 24 {
		t.Fatalf("expected a 24-hour pattern profile, got %+v", res.Patterns)
	}
}

func TestPlanTripValidation(t *testing.T) {
	h := &PlanHandler{Planner: testPlanner(&routing.MockRouteProvider{})}

	cases := []struct {
		name string
		body string
		want int
	}{
		{"missing origin", `{"destination":"Pune"}`, http.StatusBadRequest},
		{"missing destination", `{"origin":"Mumbai"}`, http.StatusBadRequest},
		{"malformed json", `{"origin":`, http.StatusBadRequest},
		{"unknown field", `{"origin":"Mumbai","destination":"Pune","bogus":1}`, http.StatusBadRequest},
		{"unknown location", `{"origin":"Atlantis","destination":"Pune"}`, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postPlan(t, h, tc.body)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

func TestDefaultFallbackDelay(t *testing.T) {
	if DefaultFallbackDelay != 2*time.Second {
		t.Fatalf("DefaultFallbackDelay = %s, want 2s", DefaultFallbackDelay)
	}
}

func TestPlanTripMethodNotAllowed(t *testing.T) {
	h := &PlanHandler{Planner: testPlanner(&routing.MockRouteProvider{})}

	req := httptest.NewRequest(http.MethodGet, "/api/plan-trip", nil)
	rec := httptest.NewRecorder()
	h.PlanTrip(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Fatalf("Allow = %q, want POST", allow)
	}
}

func TestPlanTripRoutingFailureFallsBackToSimulation(t *testing.T) {
	provider := &routing.MockRouteProvider{Err: routing.ErrRoutingDown}
	h := &PlanHandler{
		Planner:       testPlanner(provider),
		FallbackDelay: time.Millisecond,
	}

	rec := postPlan(t, h, `{"origin":"Mumbai","destination":"Pune","route_preference":"scenic"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res dto.PlanTripResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.BestRoute != "Mumbai → Scenic Highway (Beautiful Views) → Pune" {
		t.Fatalf("BestRoute = %q, want the scenic catalog route", res.BestRoute)
	}
	if res.TravelTime != "2 hours 56 minutes" {
		t.Fatalf("TravelTime = %q, want catalog value", res.TravelTime)
	}
	if len(res.DensityLevels) != 3 {
		t.Fatalf("expected three density segments, got %v", res.DensityLevels)
	}
}
