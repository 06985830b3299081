package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

// SQLGeocodeCache is the Postgres-backed variant of the geocode cache,
// for deployments sharing one cache across instances.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Get fetches the cached location for the given key.
func (s *SQLGeocodeCache) Get(ctx context.Context, key string) (_ domain.Location, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

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
    WHERE cache_key = $1;
	`

	var loc domain.Location
	scanErr := s.DB.QueryRowContext(ctx, q, key).Scan(&loc.Name, &loc.Lat, &loc.Lon)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return domain.Location{}, false, nil
	}
	if scanErr != nil {
		err = fmt.Errorf("get geocode cache: query geocode_cache table: %w", scanErr)
		return domain.Location{}, false, err
	}

	return loc, true, nil
}

// Put stores a key -> location mapping in the cache.
func (s *SQLGeocodeCache) Put(ctx context.Context, key string, loc domain.Location) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("geocode cache: empty key")
	}

	q := `
	INSERT INTO geocode_cache (cache_key, display_name, lat, lon)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (cache_key) DO UPDATE
	SET display_name = EXCLUDED.display_name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, loc.Name, loc.Lat, loc.Lon); err != nil {
		return fmt.Errorf("insert geocode cache key=%q: %w", key, err)
	}

	return nil
}
