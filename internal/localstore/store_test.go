package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()

	sqliteStore, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"sqlite": sqliteStore,
		"memory": NewMemoryStore(),
	}
}

func TestStore_SetGetDelete(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Get(KeyToken)
			require.NoError(t, err)
			require.False(t, ok, "absent key should not be found")

			require.NoError(t, store.Set(KeyToken, "abc123"))

			got, ok, err := store.Get(KeyToken)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, "abc123", got)

			// Overwrite replaces the full value
			require.NoError(t, store.Set(KeyToken, "def456"))
			got, _, err = store.Get(KeyToken)
			require.NoError(t, err)
			require.Equal(t, "def456", got)

			require.NoError(t, store.Delete(KeyToken))
			_, ok, err = store.Get(KeyToken)
			require.NoError(t, err)
			require.False(t, ok)

			// Deleting an absent key is fine
			require.NoError(t, store.Delete(KeyToken))
		})
	}
}

func TestStore_Clear(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(KeyToken, "tok"))
			require.NoError(t, store.Set(KeyUser, `{"id":1}`))

			require.NoError(t, store.Clear())

			for _, key := range []string{KeyToken, KeyUser} {
				_, ok, err := store.Get(key)
				require.NoError(t, err)
				require.False(t, ok, "key %s should be gone after Clear", key)
			}
		})
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyUser, `{"id":7,"username":"a@b.com"}`))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok, err := reopened.Get(KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"id":7,"username":"a@b.com"}`, got)
}

func TestOpen_BackendSelection(t *testing.T) {
	store, err := Open(MemoryBackend, "", nil)
	require.NoError(t, err)
	_, isMemory := store.(*MemoryStore)
	require.True(t, isMemory)

	store, err = Open(SQLiteBackend, filepath.Join(t.TempDir(), "s.db"), nil)
	require.NoError(t, err)
	defer store.Close()
	_, isSQLite := store.(*SQLiteStore)
	require.True(t, isSQLite)

	_, err = Open(Backend("redis"), "", nil)
	require.Error(t, err)
}
