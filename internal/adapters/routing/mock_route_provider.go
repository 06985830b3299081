package routing

import (
	"context"
	"errors"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// MockRouteProvider returns a canned route, or fails when Err is set.
type MockRouteProvider struct {
	Info ports.RouteInfo
	Err  error
}

func (m *MockRouteProvider) GetRoute(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteInfo, error) {
	if m.Err != nil {
		return ports.RouteInfo{}, m.Err
	}

	info := m.Info
	if len(info.Points) == 0 {
		info.Points = []domain.Location{
			{Lat: origin.Lat, Lon: origin.Lon},
			{Lat: destination.Lat, Lon: destination.Lon},
		}
	}
	return info, nil
}

// ErrRoutingDown is a convenience error for failure-path tests.
var ErrRoutingDown = errors.New("routing backend unavailable")
