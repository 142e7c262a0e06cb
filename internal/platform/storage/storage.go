// Package storage provides the key-value persistence collaborator used by
// the state stores. Each store serialises its complete state document under
// a fixed key after every transition; this package only moves bytes.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound indicates the key has never been written or was cleared.
var ErrKeyNotFound = errors.New("storage: key not found")

// KV abstracts the byte store backing persistence.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
