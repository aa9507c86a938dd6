package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLocalAreaPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "storage.toml")

	s, err := Open(path, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "system", s.GetString("theme-mode", "system"))

	require.True(t, s.SetString("theme-mode", "dark"))

	reopened, err := Open(path, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "dark", reopened.GetString("theme-mode", "system"))
}

func TestSessionAreaIsNotPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.toml")

	s, err := Open(path, nil)
	require.NoError(t, err)
	require.True(t, s.SetString("visited", "yes", InSession()))
	assert.Equal(t, "yes", s.GetString("visited", "", InSession()))
	assert.Equal(t, "", s.GetString("visited", ""), "areas are separate")

	reopened, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "no", reopened.GetString("visited", "no", InSession()))
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.toml")
	s, err := Open(path, nil)
	require.NoError(t, err)

	require.True(t, s.SetString("k", "v"))
	assert.True(t, s.Remove("k"))
	assert.True(t, s.Remove("k"), "removing a missing key succeeds")
	assert.Equal(t, "fallback", s.GetString("k", "fallback"))

	reopened, err := Open(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "fallback", reopened.GetString("k", "fallback"))
}

func TestTypedValues(t *testing.T) {
	s := Memory()

	type position struct {
		Slug  string `json:"slug"`
		Index int    `json:"index"`
	}

	require.True(t, Set(s, "last", position{Slug: "voicebrain", Index: 2}))
	assert.Equal(t, position{Slug: "voicebrain", Index: 2}, Get(s, "last", position{}))
	assert.Equal(t, 7, Get(s, "missing", 7))

	require.True(t, s.SetString("broken", "{not json"))
	assert.Equal(t, 3, Get(s, "broken", 3), "undecodable values fall back")
}

func TestSetFailsWithoutWritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")

	s, err := Open(filepath.Join(blocker, "storage.toml"), zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	assert.False(t, s.SetString("k", "v"))
	assert.Equal(t, "none", s.GetString("k", "none"), "failed writes are rolled back")
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.toml")
	require.NoError(t, os.WriteFile(path, []byte("entries = ["), 0644))

	_, err := Open(path, nil)
	assert.Error(t, err)
}
