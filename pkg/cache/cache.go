// Package cache stores fetched document exports between runs.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: JSON entries under a directory, for CLI use
//   - [RedisCache]: a shared Redis instance, for servers and CI fleets
//   - [NullCache]: stores nothing (--no-cache)
//
// Keys are built by a [Keyer] so that every backend uses the same layout:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.DocumentKey("https://example.com/home.json")
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. Expired
	// entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
