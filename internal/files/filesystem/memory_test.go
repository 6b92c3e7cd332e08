package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadWrite(t *testing.T) {
	mfs := NewMemoryFileSystem("/work")
	mfs.AddFile("Game.csproj", "<Project/>")

	data, err := mfs.ReadFile("/work/Game.csproj")
	require.NoError(t, err)
	assert.Equal(t, "<Project/>", string(data))

	require.NoError(t, mfs.WriteFile("/work/Game.csproj", []byte("<Project></Project>")))

	content, ok := mfs.Content("Game.csproj")
	require.True(t, ok)
	assert.Equal(t, "<Project></Project>", content)
}

func TestMemoryFileSystem_ReadFile_NotFound(t *testing.T) {
	mfs := NewMemoryFileSystem("/work")

	_, err := mfs.ReadFile("missing.csproj")
	assert.Error(t, err)
}

func TestMemoryFileSystem_Walk_DeterministicOrder(t *testing.T) {
	mfs := NewMemoryFileSystem("/work")
	mfs.AddFile("b/Second.csproj", "b")
	mfs.AddFile("a/First.csproj", "a")
	mfs.AddFile("Game.sln", "sln")

	dir, err := mfs.Open(".")
	require.NoError(t, err)

	var paths []string
	err = dir.Walk(func(f File, walkErr error) error {
		require.NoError(t, walkErr)
		if !f.Info().IsDir() {
			paths = append(paths, f.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Game.sln", "a/First.csproj", "b/Second.csproj"}, paths)
}

func TestMemoryFileSystem_Open_NotADirectory(t *testing.T) {
	mfs := NewMemoryFileSystem("/work")
	mfs.AddFile("Game.sln", "sln")

	_, err := mfs.Open("Game.sln")
	assert.Error(t, err)
}
