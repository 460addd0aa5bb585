// Package metadata stores small key/value records in the client's local
// SQLite database. The session record lives here.
package metadata

import "context"

// Repository is a byte-valued key/value store.
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
