package storage

import "errors"

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("key not found")

// ErrNotLoaded is returned when a store is used before Init or Load.
var ErrNotLoaded = errors.New("storage not loaded")

// Provider is a key-value storage medium. Values are opaque strings.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Values
	Get(key string) (string, error)
	Set(key, value string) error

	// Utils
	GetConfigPath() string
}
