package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAbsPath(t *testing.T) {
	prev := SetBase("/base")
	defer SetBase(prev)

	assert.Equal(t, filepath.Join("/base", "tmp", "settings.json"), SettingsFile())
	assert.Equal(t, filepath.Join("/base", ".env"), EnvFile())
	assert.Equal(t, filepath.Join("/base", "prompts", "default"), GetAbsPath(Prompts, "default"))
}

func TestSubdirectories(t *testing.T) {
	dir := t.TempDir()
	prev := SetBase(dir)
	defer SetBase(prev)

	for _, sub := range []string{"default", "embeddings", "custom"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, Memory, sub), 0o755))
	}
	// files are not listed
	require.NoError(t, os.WriteFile(filepath.Join(dir, Memory, "notes.txt"), []byte("x"), 0o644))

	assert.Equal(t, []string{"custom", "default"}, Subdirectories(Memory, EmbeddingsSubdir))
	assert.Equal(t, []string{"custom", "default", "embeddings"}, Subdirectories(Memory))
}

func TestSubdirectoriesMissingCategory(t *testing.T) {
	prev := SetBase(t.TempDir())
	defer SetBase(prev)

	assert.Empty(t, Subdirectories("nope"))
}
