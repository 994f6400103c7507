// Package storage provides abstractions for the key/value persistence
// substrate.
package storage

import "context"

// Store defines the interface for the shared key/value substrate that holds
// the session record, the TTL-bound collections and the activity timestamp.
// This abstraction allows swapping substrates (in-memory, SQLite, a real
// backend later) without changing the repository or service layers.
type Store interface {
	// Get returns the value stored under key, or (nil, nil) when the key
	// is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// Well-known keys in the substrate. The session record deliberately lives
// outside the TTL window: only the two collections expire.
const (
	KeySession   = "session"
	KeyClients   = "clients"
	KeyInvoices  = "invoices"
	KeyTimestamp = "data_timestamp"
)
