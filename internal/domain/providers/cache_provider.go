package providers

import (
	"context"
)

// CacheProvider is the caching surface the HTTP layer depends on. The
// service runs without one; every caller must tolerate a nil provider.
type CacheProvider interface {
	// Get retrieves a value, erroring when the key is absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with an expiration
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// Delete removes a value
	Delete(ctx context.Context, key string) error
}
