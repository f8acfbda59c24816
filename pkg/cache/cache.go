// Package cache stores intermediate and final pipeline results.
//
// Two kinds of entries are cached: the x/y/z series extracted from a data
// file, and rendered artifacts (HTML, SVG, PNG ...). Keys come from a [Keyer]
// so callers can scope them; values are opaque bytes.
//
// Backends:
//   - [FileCache]: one JSON file per entry, for CLI usage
//   - [RedisCache]: shared cache for several processes or machines
//   - [NullCache]: caching disabled
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. A miss is not
	// an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}

// Clearer is implemented by backends that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}

// TTLs per entry kind.
const (
	TTLSeries   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
