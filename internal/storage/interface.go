// Package storage defines the key-value contract every backend satisfies
// and picks a backend from a store target string.
package storage

// Provider is a string-keyed store of JSON text. Reads observe every prior
// write; there is no caching or queueing between callers and the medium.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the raw value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
	// Keys lists stored keys in ascending order.
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}

// Migrator is implemented by SQL backends that carry a versioned schema.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
}
