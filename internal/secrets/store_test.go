package secrets

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), ".env"))

	_, ok := s.Get("OPENAI")
	assert.False(t, ok)
}

func TestSetThenGet(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), ".env"))

	require.NoError(t, s.Set("OPENAI", "sk-123"))

	val, ok := s.Get("OPENAI")
	assert.True(t, ok)
	assert.Equal(t, "sk-123", val)
}

func TestSetPreservesOtherKeys(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), ".env"))

	require.NoError(t, s.Set(KeyAuthLogin, "admin"))
	require.NoError(t, s.Set(KeyAuthPassword, "hunter2"))
	require.NoError(t, s.Set(KeyAuthPassword, "hunter3"))

	login, ok := s.Get(KeyAuthLogin)
	assert.True(t, ok)
	assert.Equal(t, "admin", login)

	pass, ok := s.Get(KeyAuthPassword)
	assert.True(t, ok)
	assert.Equal(t, "hunter3", pass)
}

func TestAPIKeyName(t *testing.T) {
	assert.Equal(t, "OPENAI", APIKeyName("openai"))
	assert.Equal(t, "MISTRALAI", APIKeyName("mistralai"))
}
