// Package testutil provides helpers shared across plugset's tests: temp
// plugin/project tree builders and a recording Project mock.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/plugset/pkg/types"
)

// WriteTree creates the given relative-path → content files under root,
// creating parent directories as needed.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// NewPluginDir creates a plugin directory in a temp dir with the given files
// and returns its handle.
func NewPluginDir(t *testing.T, id string, files map[string]string) types.Plugin {
	t.Helper()
	dir := t.TempDir()
	WriteTree(t, dir, files)
	return types.Plugin{ID: id, Dir: dir}
}

// NewProjectDirs creates a project tree in a temp dir with separate www and
// platform www roots and returns a recording project over it.
func NewProjectDirs(t *testing.T) *RecordingProject {
	t.Helper()
	dir := t.TempDir()
	www := filepath.Join(dir, "www")
	platformWww := filepath.Join(dir, "platform_www")
	require.NoError(t, os.MkdirAll(www, 0755))
	require.NoError(t, os.MkdirAll(platformWww, 0755))
	return &RecordingProject{
		Dir:         dir,
		Www:         www,
		PlatformWww: platformWww,
	}
}

// AssertNoFile fails when path exists.
func AssertNoFile(t *testing.T, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	require.Truef(t, os.IsNotExist(err), "expected %q to not exist", path)
}

// AssertFileContent fails unless path holds exactly content.
func AssertFileContent(t *testing.T, path, content string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, content, string(data))
}
