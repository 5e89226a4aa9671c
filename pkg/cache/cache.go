// Package cache stores rendered extrusion artifacts so that re-running the
// tool on unchanged inputs with unchanged settings skips the work.
//
// Keys are derived from a SHA-256 of the input bytes plus every option that
// influences the output (see [Keyer]). Two implementations are provided:
// [FileCache] for the CLI (one JSON file per entry under the XDG cache dir)
// and [NullCache] when caching is disabled.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long an extrusion artifact stays valid.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the cached data and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources.
	Close() error
}
