package bookmarks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "state", "bookmarks.json")
}

func TestOpen_MissingFileYieldsEmptySet(t *testing.T) {
	store, err := Open(testPath(t))
	require.NoError(t, err)
	assert.Empty(t, store.List())
	assert.False(t, store.IsBookmarked("1"))
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := testPath(t)
	_, err := Open(path)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpen_RejectsCorruptFile(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestAdd_IsIdempotentAndOrdered(t *testing.T) {
	store, err := Open(testPath(t))
	require.NoError(t, err)

	require.NoError(t, store.Add("10"))
	require.NoError(t, store.Add("20"))
	require.NoError(t, store.Add("10"))
	require.NoError(t, store.Add("30"))

	assert.Equal(t, []string{"10", "20", "30"}, store.List())
	assert.True(t, store.IsBookmarked("20"))
}

func TestRemove_PreservesRemainingOrder(t *testing.T) {
	store, err := Open(testPath(t))
	require.NoError(t, err)

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, store.Add(id))
	}
	require.NoError(t, store.Remove("b"))
	require.NoError(t, store.Remove("missing"))

	assert.Equal(t, []string{"a", "c", "d"}, store.List())
	assert.False(t, store.IsBookmarked("b"))
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := testPath(t)

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Add("1"))
	require.NoError(t, store.Add("2"))
	require.NoError(t, store.Remove("1"))
	require.NoError(t, store.Add("3"))

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, reopened.List())
}

func TestOpen_DeduplicatesOnLoad(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`["1", "2", "1", "3", "2"]`), 0o644))

	store, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, store.List())
}

func TestList_ReturnsACopy(t *testing.T) {
	store, err := Open(testPath(t))
	require.NoError(t, err)
	require.NoError(t, store.Add("1"))

	ids := store.List()
	ids[0] = "mutated"
	assert.Equal(t, []string{"1"}, store.List())
}

func TestEmptySetPersistsAsEmptyArray(t *testing.T) {
	path := testPath(t)
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Add("1"))
	require.NoError(t, store.Remove("1"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
