// Package cache provides byte caching for fetched catalog documents.
//
// The atlas catalog is a remote JSON document; the viewer must come up
// even when the network is slow or down, so fetches go through a Cache.
// Three backends are provided:
//   - file: directory of hashed entries, for CLI usage
//   - redis: shared cache for multi-instance serve deployments
//   - null: no-op, for tests and --no-cache
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with a per-entry TTL.
type Cache interface {
	// Get retrieves a value. The boolean reports a hit; an expired or
	// missing entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A TTL of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
