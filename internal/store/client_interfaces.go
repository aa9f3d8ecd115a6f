package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalCache keeps the last known encrypted blob per credential hash on
// the client device, so a session can open while the remote storage is
// unreachable.
type LocalCache interface {
	// Get returns the cached blob of name; ok is false when none is cached.
	Get(ctx context.Context, name string) (blob string, ok bool, err error)
	// Put stores blob under name, replacing any cached value.
	Put(ctx context.Context, name, blob string) error
	// Remove drops the cached value of name. Removing a missing name is not
	// an error.
	Remove(ctx context.Context, name string) error
}

// Settings is a small persistent key/value store for client preferences
// such as the last username and the cache-locally choice.
type Settings interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
