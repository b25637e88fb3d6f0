// Package cache provides the caching layer for derived read views such as
// merged preference lists and upcoming meal plans. Two implementations are
// available: a Redis-backed cache for deployments and an in-process cache
// used when no Redis address is configured (and in tests).
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrCacheMiss is returned when a key is not present in the cache.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the interface implemented by all cache backends.
// Values are stored as JSON-encoded byte slices.
type Cache interface {
	// Get returns the raw value for key, or ErrCacheMiss if absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with the given TTL. A zero TTL means the
	// entry does not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key from the cache. Deleting a missing key is not an error.
	Delete(ctx context.Context, keys ...string) error

	// Close releases any resources held by the cache.
	Close() error
}

// GetJSON fetches key and decodes the stored JSON into dst.
// A present but undecodable value is treated as a miss so that stale or
// corrupt entries never surface to callers.
func GetJSON(ctx context.Context, c Cache, key string, dst interface{}) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return ErrCacheMiss
	}
	return nil
}

// SetJSON encodes value as JSON and stores it under key.
func SetJSON(ctx context.Context, c Cache, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, ttl)
}

// GetOrCompute returns the cached value for key, or computes, stores, and
// returns a fresh one. A decoded value that fails validate is treated as a
// miss and recomputed; JSON decoding alone accepts payloads written under an
// older shape of T, so callers supply the structural check. Cache backend
// failures degrade to computing the value directly; a failed write-back is
// ignored because the next read recomputes.
func GetOrCompute[T any](ctx context.Context, c Cache, key string, ttl time.Duration, validate func(T) bool, compute func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	err := GetJSON(ctx, c, key, &cached)
	if err == nil && validate(cached) {
		return cached, nil
	}

	value, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	_ = SetJSON(ctx, c, key, value, ttl)

	return value, nil
}
