// Package metadata stores small durable key-value entries for the client:
// the session credential and the cached identity live here.
package metadata

import "context"

// Repository is a durable key-value store. Get returns (nil, nil) when the
// key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
