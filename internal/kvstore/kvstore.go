// Package kvstore defines the durable key-value contract the repositories
// are built on, together with a SQLite-backed implementation and an
// in-memory one for tests.
package kvstore

import "context"

// Store is a persistent mapping from string keys to opaque byte values.
//
// Contract:
//   - Get returns (nil, nil) for an absent key, never an error.
//   - Set overwrites any existing value for the key.
//   - Delete is a no-op for an absent key.
//
// I/O failures surface as errors; callers convert them into their own
// failure signaling at the public API edge.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
