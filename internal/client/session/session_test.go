package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := Load(path)
	require.NoError(t, err)
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Email())
	assert.Empty(t, s.Token())
}

func TestLogIn_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.LogIn("a@x.com", "tok-123"))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, reloaded.LoggedIn())
	assert.Equal(t, "a@x.com", reloaded.Email())
	assert.Equal(t, "tok-123", reloaded.Token())
}

func TestLogOut_ClearsStateAndToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.LogIn("a@x.com", "tok-123"))
	require.NoError(t, s.LogOut())

	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Token())

	// The cleared state must survive a reload too.
	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.False(t, reloaded.LoggedIn())
	assert.Empty(t, reloaded.Email())
	assert.Empty(t, reloaded.Token())
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.LogIn("a@x.com", "tok-123"))

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err = Load(path)
	assert.Error(t, err)
}
