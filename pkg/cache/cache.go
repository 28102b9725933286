// Package cache defines a small byte-oriented cache used to avoid repeating
// upstream lookups whose answers change slowly (breach ranges, domain
// reputation). Implementations live in subpackages.
//
//go:generate mockgen -package mockcache -source=cache.go -destination=mock/mockcache.go *
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache stores opaque values with a TTL.
type Cache interface {
	// Get returns the value stored under key or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key for ttl. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// LoadJSON reads key and decodes it into a T. The boolean is false on a miss.
func LoadJSON[T any](ctx context.Context, c Cache, key string) (T, bool, error) {
	var out T

	b, err := c.Get(ctx, key)
	if errors.Is(err, ErrMiss) {
		return out, false, nil
	}
	if err != nil {
		return out, false, fmt.Errorf("could not read %q from cache: %w", key, err)
	}

	if err := json.Unmarshal(b, &out); err != nil {
		return out, false, fmt.Errorf("could not decode cached %q: %w", key, err)
	}

	return out, true, nil
}

// StoreJSON encodes v and stores it under key for ttl.
func StoreJSON[T any](ctx context.Context, c Cache, key string, v T, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode %q for cache: %w", key, err)
	}

	if err := c.Set(ctx, key, b, ttl); err != nil {
		return fmt.Errorf("could not write %q to cache: %w", key, err)
	}

	return nil
}
