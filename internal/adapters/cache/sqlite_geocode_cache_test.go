package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"trip-planner-service/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSqliteGeocodeCacheRoundTrip(t *testing.T) {
	c := NewSqliteGeocodeCache(openTestDB(t))
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "fwd:delhi, india"); err != nil || ok {
		t.Fatalf("miss expected, got ok=%v err=%v", ok, err)
	}

	loc := domain.Location{Name: "Delhi, India", Lat: 28.6139, Lon: 77.209}
	if err := c.Put(ctx, "fwd:delhi, india", loc); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "fwd:delhi, india")
	if err != nil || !ok {
		t.Fatalf("hit expected, got ok=%v err=%v", ok, err)
	}
	if got != loc {
		t.Fatalf("got %+v, want %+v", got, loc)
	}

	// Re-putting the same key overwrites instead of erroring.
	loc.Name = "New Delhi, India"
	if err := c.Put(ctx, "fwd:delhi, india", loc); err != nil {
		t.Fatalf("overwrite put: %v", err)
	}
	got, _, _ = c.Get(ctx, "fwd:delhi, india")
	if got.Name != "New Delhi, India" {
		t.Fatalf("overwrite lost: %+v", got)
	}
}
