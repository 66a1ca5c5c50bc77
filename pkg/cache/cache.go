// Package cache provides content-addressed caching for render artifacts.
//
// Timelines and rendered frames are cached between runs so repeated builds
// of an unchanged scene skip straight to the output. Three backends exist:
//
//   - FileCache: files under the user cache directory, for CLI usage
//   - RedisCache: shared cache for multi-instance deployments
//   - NullCache: caching disabled
//
// Keys are produced by a [Keyer] so every caller hashes the same inputs
// the same way.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache with per-entry TTLs. A miss is reported
// through the bool, not an error; errors mean the backend itself failed.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl stores it without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
