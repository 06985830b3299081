package geocode

import (
	"context"
	"fmt"

	"trip-planner-service/internal/domain"
)

// MockGeocoder resolves from a fixed name -> location table. Reverse
// lookups return the name of the closest known location.
type MockGeocoder struct {
	m map[string]domain.Location
}

func NewMockGeocoder(locations []domain.Location) *MockGeocoder {
	m := make(map[string]domain.Location, len(locations))
	for _, loc := range locations {
		m[loc.Name] = loc
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Search(ctx context.Context, query string) (domain.Location, error) {
	loc, ok := g.m[query]
	if !ok {
		return domain.Location{}, fmt.Errorf("no location for %q", query)
	}
	return loc, nil
}

func (g *MockGeocoder) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	var best string
	bestDist := -1.0
	p := domain.Coordinates{Lat: lat, Lon: lon}
	for name, loc := range g.m {
		d := p.GreatCircleMeters(loc.Coordinates())
		if bestDist < 0 || d < bestDist {
			best = name
			bestDist = d
		}
	}
	if best == "" {
		return "", fmt.Errorf("no locations registered")
	}
	return best, nil
}
