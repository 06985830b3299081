package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-planner-service/internal/domain"
)

// SQLite backed cache mapping normalized lookup keys to resolved
// locations. Keys are expected to be consistent (e.g., normalized)
// by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Get fetches the cached location for the given key.
func (s *SqliteGeocodeCache) Get(ctx context.Context, key string) (domain.Location, bool, error) {
	if s.DB == nil {
		return domain.Location{}, false, errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return domain.Location{}, false, errors.New("geocode cache: empty key")
	}

	q := `
	SELECT display_name, lat, lon
    FROM geocode_cache
    WHERE cache_key = ?;
	`

	var loc domain.Location
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&loc.Name, &loc.Lat, &loc.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Location{}, false, nil
	}
	if err != nil {
		return domain.Location{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return loc, true, nil
}

// Put stores a key -> location mapping in the cache.
func (s *SqliteGeocodeCache) Put(ctx context.Context, key string, loc domain.Location) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("geocode cache: empty key")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (
        cache_key,
        display_name,
        lat,
        lon
    )
    VALUES (?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, key, loc.Name, loc.Lat, loc.Lon); err != nil {
		return fmt.Errorf("insert geocode cache key=%q: %w", key, err)
	}

	return nil
}
