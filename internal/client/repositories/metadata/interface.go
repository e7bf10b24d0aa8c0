// Package metadata is a small key/value table in the local database. The
// credential store keeps tokens and the cached user record here.
package metadata

import (
	"context"
)

// Repository reads and writes opaque values by key. Get reports an absent
// key as (nil, nil).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
