// Package kvstore provides durable single-key document storage.
package kvstore

import (
	"context"

	"breakfast-deals/internal/pkg/errs"
)

var ErrKeyNotFound = errs.New("key not found")

// Store holds opaque values under string keys. Set overwrites the whole value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
