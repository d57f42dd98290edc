// Package storage defines the key-value store contract shared by every
// stateful feature of the resident service. Each concern owns one or more
// string keys whose values are JSON-serialized records; there is no
// transactionality across keys and concurrent writers to the same key are
// last-write-wins.
package storage

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

type Store interface {
	// Get returns the raw value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
