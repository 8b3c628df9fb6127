package domainsettings

import "context"

// Store reads the current settings snapshot from wherever the administrator keeps them.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
}

// StoreFunc adapts a function to Store.
type StoreFunc func(ctx context.Context) (Snapshot, error)

// Load implements Store.
func (f StoreFunc) Load(ctx context.Context) (Snapshot, error) {
	return f(ctx)
}

// Static serves a fixed snapshot.
type Static Snapshot

// Load implements Store.
func (s Static) Load(context.Context) (Snapshot, error) {
	return Snapshot(s), nil
}
