package cache

import (
	"context"
	"time"
)

// Store is the read-through cache used for query and analytics results.
// Implementations: Redis when configured, an in-process store otherwise.
type Store interface {
	// Get retrieves a value by key. The second return reports a hit.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a key-value pair with a TTL
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes every key starting with prefix. Used to
	// invalidate derived results when new documents are ingested.
	DeletePrefix(ctx context.Context, prefix string) error

	// Close releases the store's resources
	Close() error
}
