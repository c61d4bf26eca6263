// Package cache provides a small byte cache used to skip regenerating
// render artifacts (SVG/PNG/DOT) when neither the dataset nor the render
// options have changed.
//
// Keys are derived from a hash of the CSV bytes plus the render options, so
// any edit to the data or a flag change produces a fresh artifact. Entries
// carry an optional TTL.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long cached render artifacts stay valid.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey builds the cache key for a render artifact: a hash of the
// dataset bytes combined with the layout, format and detail options.
func ArtifactKey(datasetHash, layout, format string, detailed bool) string {
	return hashKey("artifact", datasetHash, layout, format, detailed)
}
