package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemory()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, store.Set("key", "value"))
	value, err := store.Get("key")
	assert.NoError(t, err)
	assert.Equal(t, "value", value)

	assert.NoError(t, store.Set("key", "updated"))
	value, _ = store.Get("key")
	assert.Equal(t, "updated", value)

	assert.NoError(t, store.Remove("key"))
	_, err = store.Get("key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNamespacedIsolation(t *testing.T) {
	backend := NewMemory()
	alice := Namespaced(backend, "alice")
	bob := Namespaced(backend, "bob")

	assert.NoError(t, alice.Set("streak", "5"))

	_, err := bob.Get("streak")
	assert.ErrorIs(t, err, ErrNotFound)

	value, err := alice.Get("streak")
	assert.NoError(t, err)
	assert.Equal(t, "5", value)
}

func TestSQLiteStore(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	defer store.Close()

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, store.Set("key", `{"a":1}`))
	assert.NoError(t, store.Set("key", `{"a":2}`))

	value, err := store.Get("key")
	assert.NoError(t, err)
	assert.Equal(t, `{"a":2}`, value)

	assert.NoError(t, store.Remove("key"))
	_, err = store.Get("key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenSQLiteEmptyPath(t *testing.T) {
	_, err := OpenSQLite("  ")
	assert.Error(t, err)
}
