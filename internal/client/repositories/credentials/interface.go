package credentials

import (
	"context"
)

// Repository is the secure key/value store for session credentials such as
// the auth token. Values are encrypted at rest.
type Repository interface {
	// Save stores value under key, overwriting any previous value.
	Save(ctx context.Context, key string, value []byte) error

	// Load returns the value stored under key, or nil when the key is absent.
	Load(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes all stored credentials.
	Clear(ctx context.Context) error
}
