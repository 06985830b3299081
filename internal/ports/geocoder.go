package ports

import (
	"context"
	"trip-planner-service/internal/domain"
)

// Geocoder resolves place names to coordinates and back.
type Geocoder interface {
	// Search resolves a free-text query to a named location.
	Search(ctx context.Context, query string) (domain.Location, error)
	// Reverse resolves coordinates to a display name.
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}
