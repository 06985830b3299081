package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-planner-service/internal/domain"
)

const redisKeyPrefix = "geocode:"

// RedisGeocodeCache stores resolved locations in Redis with a TTL.
// Entries are JSON-encoded.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

type redisEntry struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Get fetches the cached location for the given key.
func (r *RedisGeocodeCache) Get(ctx context.Context, key string) (domain.Location, bool, error) {
	if r.Client == nil {
		return domain.Location{}, false, errors.New("geocode cache: redis client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return domain.Location{}, false, errors.New("geocode cache: empty key")
	}

	raw, err := r.Client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Location{}, false, nil
	}
	if err != nil {
		return domain.Location{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	var e redisEntry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return domain.Location{}, false, fmt.Errorf("get geocode cache: decode entry: %w", err)
	}

	return domain.Location{Name: e.Name, Lat: e.Lat, Lon: e.Lon}, true, nil
}

// Put stores a key -> location mapping in the cache.
func (r *RedisGeocodeCache) Put(ctx context.Context, key string, loc domain.Location) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("geocode cache: empty key")
	}

	raw, err := json.Marshal(redisEntry{Name: loc.Name, Lat: loc.Lat, Lon: loc.Lon})
	if err != nil {
		return fmt.Errorf("insert geocode cache key=%q: encode entry: %w", key, err)
	}

	if err := r.Client.Set(ctx, redisKeyPrefix+key, raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache key=%q: redis set: %w", key, err)
	}

	return nil
}
