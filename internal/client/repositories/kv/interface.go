// Package kv is a small persistent key-value store: the durable storage
// area the session manager writes its record into.
package kv

import "context"

// Repository stores opaque values under string keys. Get returns (nil, nil)
// for a missing key and a non-nil, possibly empty, slice for a present one.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
