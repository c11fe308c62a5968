// Package metadata persists small key/value pairs locally. The session
// layer stores the auth token and the serialized user record here, playing
// the role browser local storage played for the original storefront.
package metadata

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
