package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarksAddAndList(t *testing.T) {
	b := NewBookmarks(filepath.Join(t.TempDir(), "bookmarks.toml"))
	list, err := b.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	first, err := b.Add(" Floodgap ", "gopher://gopher.floodgap.com/1/", "search, , home")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Floodgap", first.Title)
	assert.Equal(t, []string{"search", "home"}, first.Tags)

	second, err := b.Add("", "gopher://example.org/", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	list, err = b.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, "gopher://example.org/", list[1].URL)
	assert.True(t, first.Added.Equal(list[0].Added))
}

func TestBookmarksRemove(t *testing.T) {
	b := NewBookmarks(filepath.Join(t.TempDir(), "bookmarks.toml"))
	bm, err := b.Add("a", "gopher://a/", "")
	require.NoError(t, err)

	removed, err := b.Remove("missing")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = b.Remove(bm.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	list, err := b.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHistoryTrimsOldest(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "history.toml"), 3)
	for i := 1; i <= 5; i++ {
		_, err := h.Add(fmt.Sprintf("p%d", i), fmt.Sprintf("gopher://h/1/%d", i))
		require.NoError(t, err)
	}
	visits, err := h.List()
	require.NoError(t, err)
	require.Len(t, visits, 3)
	assert.Equal(t, "p3", visits[0].Title)
	assert.Equal(t, "p5", visits[2].Title)

	require.NoError(t, h.Clear())
	visits, err = h.List()
	require.NoError(t, err)
	assert.Empty(t, visits)
}

func TestLockTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.toml")
	h := NewHistory(path, 0)
	h.lockTimeout = 150 * time.Millisecond

	held := flock.New(path + ".lock")
	locked, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer held.Unlock()

	_, err = h.Add("blocked", "gopher://h/")
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, SplitTags(""))
	assert.Nil(t, SplitTags(" , "))
	assert.Equal(t, []string{"a", "b"}, SplitTags("a,b"))
}
