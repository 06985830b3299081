package ports

import (
	"context"
	"trip-planner-service/internal/domain"
)

// RouteInfo is the road route between two points as reported by a
// routing backend, including traffic-adjusted travel time.
type RouteInfo struct {
	TravelTimeSeconds int
	DistanceMeters    int
	Points            []domain.Location
	RoadNumbers       []string
}

// RouteProvider is the contract for retrieving a driving route between
// two coordinates.
type RouteProvider interface {
	GetRoute(ctx context.Context, origin, destination domain.Coordinates) (RouteInfo, error)
}
