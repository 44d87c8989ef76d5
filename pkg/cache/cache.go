// Package cache provides optimization result caching so repeated runs of
// the same scenario skip the placement search. Backends: local files for
// CLI usage, Redis for the server, and a null cache for tests.
package cache

import (
	"context"
	"time"
)

// TTLSolution bounds how long cached solutions stay valid. Scenario
// edits change the key, so the TTL only guards against unbounded growth.
const TTLSolution = 7 * 24 * time.Hour

// Cache is the storage backend for serialized solutions.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// SolutionKey derives the cache key for one optimization run. Any change
// to the scenario, aisle width or iteration budget produces a new key.
func SolutionKey(scenario any, minAisleWidth float64, maxIterations int) string {
	return hashKey("solution", scenario, minAisleWidth, maxIterations)
}
