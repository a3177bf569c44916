package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/filesystem"
	"github.com/arthur-debert/plugset/pkg/testutil"
	"github.com/arthur-debert/plugset/pkg/types"
)

func TestSourceFileInstall(t *testing.T) {
	h := &sourceFileHandler{fs: filesystem.NewOS()}

	t.Run("legacy java layout", func(t *testing.T) {
		plugin := testutil.NewPluginDir(t, "com.ex.plugin", map[string]string{
			"Foo.java": "class Foo {}",
		})
		proj := testutil.NewProjectDirs(t)

		d := types.Directive{Kind: types.KindSourceFile, Src: "Foo.java", TargetDir: "src/com/example"}
		require.NoError(t, h.Install(d, plugin, proj, types.Options{}))

		testutil.AssertFileContent(t,
			filepath.Join(proj.Dir, "app/src/main/java/com/example/Foo.java"),
			"class Foo {}")
	})

	t.Run("existing destination fails without force", func(t *testing.T) {
		plugin := testutil.NewPluginDir(t, "com.ex.plugin", map[string]string{
			"Foo.java": "new",
		})
		proj := testutil.NewProjectDirs(t)
		testutil.WriteTree(t, proj.Dir, map[string]string{
			"app/src/main/java/com/example/Foo.java": "old",
		})

		d := types.Directive{Kind: types.KindSourceFile, Src: "Foo.java", TargetDir: "src/com/example"}
		err := h.Install(d, plugin, proj, types.Options{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

		testutil.AssertFileContent(t,
			filepath.Join(proj.Dir, "app/src/main/java/com/example/Foo.java"), "old")
	})

	t.Run("force overwrites", func(t *testing.T) {
		plugin := testutil.NewPluginDir(t, "com.ex.plugin", map[string]string{
			"Foo.java": "new",
		})
		proj := testutil.NewProjectDirs(t)
		testutil.WriteTree(t, proj.Dir, map[string]string{
			"app/src/main/java/com/example/Foo.java": "old",
		})

		d := types.Directive{Kind: types.KindSourceFile, Src: "Foo.java", TargetDir: "src/com/example"}
		require.NoError(t, h.Install(d, plugin, proj, types.Options{Force: true}))

		testutil.AssertFileContent(t,
			filepath.Join(proj.Dir, "app/src/main/java/com/example/Foo.java"), "new")
	})

	t.Run("missing attributes", func(t *testing.T) {
		plugin := types.Plugin{ID: "com.ex.plugin", Dir: t.TempDir()}
		proj := testutil.NewProjectDirs(t)

		err := h.Install(types.Directive{Kind: types.KindSourceFile, TargetDir: "src"}, plugin, proj, types.Options{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissingAttr))

		err = h.Install(types.Directive{Kind: types.KindSourceFile, Src: "Foo.java"}, plugin, proj, types.Options{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissingAttr))
	})
}

func TestSourceFileRoundTrip(t *testing.T) {
	h := &sourceFileHandler{fs: filesystem.NewOS()}

	t.Run("java source prunes created package dirs", func(t *testing.T) {
		plugin := testutil.NewPluginDir(t, "com.ex.plugin", map[string]string{
			"Foo.java": "class Foo {}",
		})
		proj := testutil.NewProjectDirs(t)
		testutil.WriteTree(t, proj.Dir, map[string]string{
			"app/src/main/AndroidManifest.xml": "<manifest/>",
		})

		d := types.Directive{Kind: types.KindSourceFile, Src: "Foo.java", TargetDir: "src/com/example"}
		require.NoError(t, h.Install(d, plugin, proj, types.Options{}))
		require.NoError(t, h.Uninstall(d, plugin, proj, types.Options{}))

		// Package scaffolding is gone, pre-existing content intact.
		testutil.AssertNoFile(t, filepath.Join(proj.Dir, "app/src/main/java"))
		testutil.AssertFileContent(t,
			filepath.Join(proj.Dir, "app/src/main/AndroidManifest.xml"), "<manifest/>")
	})

	t.Run("kotlin source prunes like java", func(t *testing.T) {
		plugin := testutil.NewPluginDir(t, "com.ex.plugin", map[string]string{
			"Foo.kt": "class Foo",
		})
		proj := testutil.NewProjectDirs(t)
		testutil.WriteTree(t, proj.Dir, map[string]string{
			"app/src/main/AndroidManifest.xml": "<manifest/>",
		})

		d := types.Directive{Kind: types.KindSourceFile, Src: "Foo.kt", TargetDir: "src/com/example"}
		require.NoError(t, h.Install(d, plugin, proj, types.Options{}))
		require.NoError(t, h.Uninstall(d, plugin, proj, types.Options{}))

		testutil.AssertNoFile(t, filepath.Join(proj.Dir, "app/src/main/java"))
	})

	t.Run("other extensions remove only the file", func(t *testing.T) {
		plugin := testutil.NewPluginDir(t, "com.ex.plugin", map[string]string{
			"config.xml": "<config/>",
		})
		proj := testutil.NewProjectDirs(t)

		d := types.Directive{Kind: types.KindSourceFile, Src: "config.xml", TargetDir: "res/xml"}
		require.NoError(t, h.Install(d, plugin, proj, types.Options{}))
		require.NoError(t, h.Uninstall(d, plugin, proj, types.Options{}))

		testutil.AssertNoFile(t, filepath.Join(proj.Dir, "app/src/main/res/xml/config.xml"))
		// No pruning for non-source files: the directory stays.
		info, err := os.Stat(filepath.Join(proj.Dir, "app/src/main/res/xml"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}
