package storage

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) *LocalAdapter {
	t.Helper()
	adapter, err := NewLocalAdapter(t.TempDir())
	require.NoError(t, err)
	return adapter
}

func TestLocalWriteReadExists(t *testing.T) {
	adapter := newTestAdapter(t)

	require.NoError(t, adapter.Write("dir/sub/file.txt", []byte("content")))

	data, err := adapter.Read("dir/sub/file.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	assert.True(t, adapter.Exists("dir/sub/file.txt"))
	assert.True(t, adapter.Exists("dir/sub"))
	assert.False(t, adapter.Exists("dir/other"))
}

func TestLocalResolveRoundTrips(t *testing.T) {
	adapter := newTestAdapter(t)

	canonical := adapter.Resolve("dir", "file.txt")
	require.NoError(t, adapter.Write(canonical, []byte("x")))

	// Canonical paths pass through unchanged, relative paths resolve to the
	// same location.
	assert.True(t, adapter.Exists(canonical))
	assert.True(t, adapter.Exists("dir/file.txt"))
}

func TestLocalAbsoluteLogicalPaths(t *testing.T) {
	adapter := newTestAdapter(t)

	// A leading separator does not escape the root: "/ws/docs" and "ws/docs"
	// name the same location.
	require.NoError(t, adapter.CreateDirectories("/ws/docs"))
	require.NoError(t, adapter.Write("/ws/docs/a.txt", []byte("x")))

	assert.True(t, adapter.Exists("ws/docs/a.txt"))
	assert.True(t, adapter.Exists(adapter.Resolve("/ws/docs", "a.txt")))

	data, err := adapter.Read("/ws/docs/a.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), data)

	entries, err := adapter.Walk("/ws/docs")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, adapter.Move("/ws/docs/a.txt", "/ws/docs/b.txt"))
	assert.False(t, adapter.Exists("/ws/docs/a.txt"))
	assert.True(t, adapter.Exists("ws/docs/b.txt"))
}

func TestLocalMove(t *testing.T) {
	adapter := newTestAdapter(t)

	require.NoError(t, adapter.Write("a/old.txt", []byte("x")))
	require.NoError(t, adapter.Move("a/old.txt", "b/new.txt"))

	assert.False(t, adapter.Exists("a/old.txt"))
	data, err := adapter.Read("b/new.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), data)
}

func TestLocalMoveDirectory(t *testing.T) {
	adapter := newTestAdapter(t)

	require.NoError(t, adapter.Write("old/nested/file.txt", []byte("x")))
	require.NoError(t, adapter.Move("old", "renamed"))

	assert.False(t, adapter.Exists("old"))
	assert.True(t, adapter.Exists("renamed/nested/file.txt"))
}

func TestLocalWalkDeepestFirst(t *testing.T) {
	adapter := newTestAdapter(t)

	require.NoError(t, adapter.Write("root/a/deep.txt", []byte("1")))
	require.NoError(t, adapter.Write("root/top.txt", []byte("2")))

	entries, err := adapter.Walk("root")
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// Every child must appear before its parent so deletion in order works.
	position := make(map[string]int, len(entries))
	for i, e := range entries {
		position[e] = i
	}
	for _, e := range entries {
		for other, pos := range position {
			if other != e && strings.HasPrefix(e, other+"/") {
				assert.Less(t, position[e], pos, "%s must sort before its parent %s", e, other)
			}
		}
	}
	assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool { return entries[i] > entries[j] }))

	for _, e := range entries {
		require.NoError(t, adapter.Delete(e))
	}
	assert.False(t, adapter.Exists("root"))
}
