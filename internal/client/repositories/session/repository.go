package session

import (
	"context"
)

// Well-known keys.
const (
	KeyToken = "token"
	KeyName  = "name"
)

// Repository is the client's local key/value session store. Get returns ""
// for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
