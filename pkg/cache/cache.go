// Package cache provides artifact caching for rendered diagram outputs.
//
// Rendering a graph through Graphviz is the slowest stage of the pipeline,
// and the output depends only on the DOT source and the target format. The
// cache keys on a hash of both, so repeated renders of the same graph are
// served from disk.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache stores rendered artifacts keyed by content hash.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey builds the cache key for one rendered output: a hash of the
// DOT source prefixed with the target format.
func ArtifactKey(dot, format string) string {
	return fmt.Sprintf("render:%s:%s", format, Hash([]byte(dot)))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
