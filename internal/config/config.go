package config

import (
	"os"
	"strconv"
	"time"
)

// Get returns the environment value for key, or fallback when unset/empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt parses an integer environment value, returning fallback on
// missing or malformed input.
func GetInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// GetMillis reads a millisecond count and returns it as a duration.
func GetMillis(key string, fallback time.Duration) time.Duration {
	ms := GetInt(key, int(fallback.Milliseconds()))
	return time.Duration(ms) * time.Millisecond
}
