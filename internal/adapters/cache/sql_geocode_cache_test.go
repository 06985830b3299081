package cache

import (
	"context"
	"testing"

	"trip-planner-service/internal/domain"
)

// The Postgres variant runs against the in-memory SQLite DB here: the
// schema DDL is shared, and SQLite accepts both $N placeholders and the
// ON CONFLICT ... EXCLUDED upsert form.
func TestSQLGeocodeCacheRoundTrip(t *testing.T) {
	c := NewSQLGeocodeCache(openTestDB(t))
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "rev:18.52040,73.85670"); err != nil || ok {
		t.Fatalf("miss expected, got ok=%v err=%v", ok, err)
	}

	loc := domain.Location{Name: "Pune, Maharashtra", Lat: 18.5204, Lon: 73.8567}
	if err := c.Put(ctx, "rev:18.52040,73.85670", loc); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "rev:18.52040,73.85670")
	if err != nil || !ok {
		t.Fatalf("hit expected, got ok=%v err=%v", ok, err)
	}
	if got != loc {
		t.Fatalf("got %+v, want %+v", got, loc)
	}

	// Upsert replaces the stored name for an existing key.
	loc.Name = "Pune, Maharashtra, India"
	if err := c.Put(ctx, "rev:18.52040,73.85670", loc); err != nil {
		t.Fatalf("overwrite put: %v", err)
	}
	got, _, _ = c.Get(ctx, "rev:18.52040,73.85670")
	if got.Name != "Pune, Maharashtra, India" {
		t.Fatalf("overwrite lost: %+v", got)
	}
}

func TestSQLGeocodeCacheRejectsEmptyKey(t *testing.T) {
	c := NewSQLGeocodeCache(openTestDB(t))
	ctx := context.Background()

	if err := c.Put(ctx, "  ", domain.Location{Name: "x"}); err == nil {
		t.Fatal("expected error for blank key")
	}
	if _, _, err := c.Get(ctx, ""); err == nil {
		t.Fatal("expected error for blank key")
	}
}
