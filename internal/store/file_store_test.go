package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
)

func newDiskStore(t *testing.T) (KeyValueStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	kv, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)
	return kv, path
}

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	kv, _ := newDiskStore(t)
	assert.Empty(t, kv.Keys())
}

func TestFileStore_WriteReadRoundTrip(t *testing.T) {
	kv, _ := newDiskStore(t)

	require.NoError(t, kv.Write(KeyUserName, "Asha"))

	got, ok := kv.Read(KeyUserName)
	require.True(t, ok)
	assert.Equal(t, "Asha", got)

	_, ok = kv.Read("absent")
	assert.False(t, ok)
}

func TestFileStore_PersistsAsJSONObject(t *testing.T) {
	kv, path := newDiskStore(t)
	require.NoError(t, kv.Write(KeyIsLoggedIn, "true"))
	require.NoError(t, kv.Write(KeyUserEmail, "asha@example.com"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk map[string]string
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Equal(t, map[string]string{
		KeyIsLoggedIn: "true",
		KeyUserEmail:  "asha@example.com",
	}, onDisk)
}

func TestFileStore_Delete(t *testing.T) {
	kv, _ := newDiskStore(t)
	require.NoError(t, kv.Write(KeyVisitorID, "visitor_1"))

	require.NoError(t, kv.Delete(KeyVisitorID))
	_, ok := kv.Read(KeyVisitorID)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	require.NoError(t, kv.Delete(KeyVisitorID))
}

func TestFileStore_ReopenSeesPersistedState(t *testing.T) {
	kv, path := newDiskStore(t)
	require.NoError(t, kv.Write(KeyUserName, "Asha"))

	reopened, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	got, ok := reopened.Read(KeyUserName)
	require.True(t, ok)
	assert.Equal(t, "Asha", got)
}

// Two stores on the same file stand in for two running processes. A
// write only replaces its own key on disk, so writers on different keys
// do not clobber each other even without reloading first.
func TestFileStore_PerKeyWritesAcrossInstances(t *testing.T) {
	kv, path := newDiskStore(t)
	other, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, kv.Write(KeyUserName, "Asha"))
	require.NoError(t, other.Write(KeyVisitorID, "visitor_9"))

	require.NoError(t, kv.Reload())
	name, _ := kv.Read(KeyUserName)
	id, _ := kv.Read(KeyVisitorID)
	assert.Equal(t, "Asha", name)
	assert.Equal(t, "visitor_9", id)
}

// Same key from two instances is last-write-wins, whole value.
func TestFileStore_SameKeyLastWriteWins(t *testing.T) {
	kv, path := newDiskStore(t)
	other, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, kv.Write(KeyUserName, "first"))
	require.NoError(t, other.Write(KeyUserName, "second"))

	require.NoError(t, kv.Reload())
	got, _ := kv.Read(KeyUserName)
	assert.Equal(t, "second", got)
}

func TestFileStore_CorruptFileKeepsInMemoryState(t *testing.T) {
	kv, path := newDiskStore(t)
	require.NoError(t, kv.Write(KeyUserName, "Asha"))

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	require.NoError(t, kv.Reload())
	got, ok := kv.Read(KeyUserName)
	require.True(t, ok)
	assert.Equal(t, "Asha", got)

	// The next write repairs the file.
	require.NoError(t, kv.Write(KeyUserEmail, "asha@example.com"))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]string
	assert.NoError(t, json.Unmarshal(raw, &onDisk))
}

func TestFileStore_InMemoryModeNeverTouchesDisk(t *testing.T) {
	kv, err := NewFileStore(":memory:", logger.Nop())
	require.NoError(t, err)

	require.NoError(t, kv.Write(KeyUserName, "Asha"))
	got, ok := kv.Read(KeyUserName)
	require.True(t, ok)
	assert.Equal(t, "Asha", got)

	if _, statErr := os.Stat(":memory:"); statErr == nil {
		t.Fatal("in-memory store created a file named :memory:")
	}
}

func TestFileStore_SnapshotIsACopy(t *testing.T) {
	kv, _ := newDiskStore(t)
	require.NoError(t, kv.Write(KeyUserName, "Asha"))

	snap := kv.Snapshot()
	snap[KeyUserName] = "mutated"

	got, _ := kv.Read(KeyUserName)
	assert.Equal(t, "Asha", got)
}

func TestFileStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	kv, err := NewFileStore(path, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, kv.Write(KeyUserName, "Asha"))
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}
