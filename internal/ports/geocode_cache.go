package ports

import (
	"context"
	"trip-planner-service/internal/domain"
)

// GeocodeCache persists resolved locations. Keys are normalized by the
// caller ("fwd:<query>" for searches, "rev:<lat>,<lon>" for reverse
// lookups with coordinates rounded to five decimals).
type GeocodeCache interface {
	Get(ctx context.Context, key string) (domain.Location, bool, error)
	Put(ctx context.Context, key string, loc domain.Location) error
}
