package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearchByTag tests the one-level "parent/name" result format for a
// tagged file.
func TestSearchByTag(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/docs", nil, true))
	require.NoError(t, s.Create("/docs/readme.txt", []byte("hello"), false))
	require.NoError(t, s.AddTag("/docs/readme.txt", "important"))

	assert.Equal(t, []string{"docs/readme.txt"}, s.SearchByTag("important"))
	assert.Empty(t, s.SearchByTag("missing"))
}

// TestSearchByTagRootLevel tests that hits directly under the root carry the
// root's own name as the parent component.
func TestSearchByTagRootLevel(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/top.txt", []byte("x"), false))
	require.NoError(t, s.AddTag("/top.txt", "pin"))

	assert.Equal(t, []string{"//top.txt"}, s.SearchByTag("pin"))
}

// TestSearchByTagOrder tests deterministic sorted traversal across siblings
// and subdirectories.
func TestSearchByTagOrder(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/b", nil, true))
	require.NoError(t, s.Create("/a", nil, true))
	require.NoError(t, s.Create("/b/two.txt", []byte("2"), false))
	require.NoError(t, s.Create("/a/one.txt", []byte("1"), false))
	require.NoError(t, s.AddTag("/b/two.txt", "x"))
	require.NoError(t, s.AddTag("/a/one.txt", "x"))

	assert.Equal(t, []string{"a/one.txt", "b/two.txt"}, s.SearchByTag("x"))
}

// TestSearchByMIME tests exact MIME matching, directories excluded.
func TestSearchByMIME(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/docs", nil, true))
	require.NoError(t, s.Create("/docs/a.txt", []byte("a"), false))
	require.NoError(t, s.Create("/docs/b.bin", []byte{0x1}, false))
	require.NoError(t, s.SetMIMEType("/docs/b.bin", "application/octet-stream"))

	assert.Equal(t, []string{"docs/a.txt"}, s.SearchByMIME("text/plain"))
	assert.Equal(t, []string{"docs/b.bin"}, s.SearchByMIME("application/octet-stream"))
	assert.Empty(t, s.SearchByMIME("image/png"))
}

// TestSearchByGlob tests doublestar matching against root-relative paths.
func TestSearchByGlob(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/docs", nil, true))
	require.NoError(t, s.Create("/docs/readme.txt", []byte("r"), false))
	require.NoError(t, s.Create("/docs/nested", nil, true))
	require.NoError(t, s.Create("/docs/nested/deep.txt", []byte("d"), false))
	require.NoError(t, s.Create("/other.md", []byte("m"), false))

	hits, err := s.SearchByGlob("**/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"/docs/nested/deep.txt", "/docs/readme.txt"}, hits)

	hits, err = s.SearchByGlob("docs/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"/docs/readme.txt"}, hits)

	hits, err = s.SearchByGlob("*.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"/other.md"}, hits)
}

// TestSearchByGlobBadPattern tests pattern validation.
func TestSearchByGlobBadPattern(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SearchByGlob("[")
	assert.Error(t, err)
}

// TestSearchExcludesDirectories tests that directory nodes never match, even
// when tagged.
func TestSearchExcludesDirectories(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/docs", nil, true))
	require.NoError(t, s.AddTag("/docs", "important"))

	assert.Empty(t, s.SearchByTag("important"))

	hits, err := s.SearchByGlob("docs")
	require.NoError(t, err)
	assert.Empty(t, hits)
}
