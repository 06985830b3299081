package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"trip-planner-service/internal/domain"
)

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisGeocodeCache(client, time.Hour)

	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "rev:19.07600,72.87770"); err != nil || ok {
		t.Fatalf("miss expected, got ok=%v err=%v", ok, err)
	}

	loc := domain.Location{Name: "Mumbai, Maharashtra, India", Lat: 19.076, Lon: 72.8777}
	if err := c.Put(ctx, "rev:19.07600,72.87770", loc); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "rev:19.07600,72.87770")
	if err != nil || !ok {
		t.Fatalf("hit expected, got ok=%v err=%v", ok, err)
	}
	if got != loc {
		t.Fatalf("got %+v, want %+v", got, loc)
	}
}

func TestRedisGeocodeCacheTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisGeocodeCache(client, time.Minute)

	ctx := context.Background()
	if err := c.Put(ctx, "fwd:pune, india", domain.Location{Name: "Pune", Lat: 18.52, Lon: 73.85}); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, err := c.Get(ctx, "fwd:pune, india"); err != nil || ok {
		t.Fatalf("entry should have expired, got ok=%v err=%v", ok, err)
	}
}

func TestRedisGeocodeCacheRejectsEmptyKey(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisGeocodeCache(client, time.Hour)

	if err := c.Put(context.Background(), "  ", domain.Location{}); err == nil {
		t.Fatal("expected error for empty key")
	}
	if _, _, err := c.Get(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty key")
	}
}
