// Package storage defines the key/value port the progress tracker persists
// through, plus the available backends (memory, sqlite file, gorm/postgres).
package storage

import "errors"

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a flat string key/value store. Values are JSON documents encoded
// by the caller; the store itself gives no transactional guarantees.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// Namespaced wraps a store so that every key is scoped under a profile,
// giving each profile its own isolated state in a shared backend.
func Namespaced(s Store, profile string) Store {
	if profile == "" {
		profile = "default"
	}
	return &namespaced{inner: s, prefix: profile + ":"}
}

type namespaced struct {
	inner  Store
	prefix string
}

func (n *namespaced) Get(key string) (string, error) {
	return n.inner.Get(n.prefix + key)
}

func (n *namespaced) Set(key, value string) error {
	return n.inner.Set(n.prefix+key, value)
}

func (n *namespaced) Remove(key string) error {
	return n.inner.Remove(n.prefix + key)
}
