package handlers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/filesystem"
	"github.com/arthur-debert/plugset/pkg/testutil"
	"github.com/arthur-debert/plugset/pkg/types"
)

func TestJSModuleInstall(t *testing.T) {
	h := &jsModuleHandler{fs: filesystem.NewOS()}

	t.Run("writes wrapped module under plugins dir", func(t *testing.T) {
		plugin := testutil.NewPluginDir(t, "com.ex.device", map[string]string{
			"www/device.js": "exports.platform = 'android';",
		})
		proj := testutil.NewProjectDirs(t)

		d := types.Directive{Kind: types.KindJSModule, Src: "www/device.js", Name: "device"}
		require.NoError(t, h.Install(d, plugin, proj, types.Options{}))

		testutil.AssertFileContent(t,
			filepath.Join(proj.Www, "plugins/com.ex.device/www/device.js"),
			"cordova.define(\"com.ex.device.device\", function(require, exports, module) {\nexports.platform = 'android';\n});\n")
	})

	t.Run("duplicates into platform www when configured", func(t *testing.T) {
		plugin := testutil.NewPluginDir(t, "com.ex.device", map[string]string{
			"www/device.js": "exports.x = 1;",
		})
		proj := testutil.NewProjectDirs(t)

		d := types.Directive{Kind: types.KindJSModule, Src: "www/device.js"}
		require.NoError(t, h.Install(d, plugin, proj, types.Options{UsePlatformWww: true}))

		assert.FileExists(t, filepath.Join(proj.Www, "plugins/com.ex.device/www/device.js"))
		assert.FileExists(t, filepath.Join(proj.PlatformWww, "plugins/com.ex.device/www/device.js"))
	})

	t.Run("missing src is a configuration error", func(t *testing.T) {
		plugin := types.Plugin{ID: "com.ex.device", Dir: t.TempDir()}
		proj := testutil.NewProjectDirs(t)

		err := h.Install(types.Directive{Kind: types.KindJSModule}, plugin, proj, types.Options{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissingAttr))
	})
}

func TestJSModuleRoundTrip(t *testing.T) {
	h := &jsModuleHandler{fs: filesystem.NewOS()}

	plugin := testutil.NewPluginDir(t, "com.ex.device", map[string]string{
		"www/device.js": "exports.x = 1;",
	})
	proj := testutil.NewProjectDirs(t)
	opts := types.Options{UsePlatformWww: true}

	d := types.Directive{Kind: types.KindJSModule, Src: "www/device.js"}
	require.NoError(t, h.Install(d, plugin, proj, opts))
	require.NoError(t, h.Uninstall(d, plugin, proj, opts))

	// The whole plugins/<id> scaffolding is pruned from both roots.
	testutil.AssertNoFile(t, filepath.Join(proj.Www, "plugins"))
	testutil.AssertNoFile(t, filepath.Join(proj.PlatformWww, "plugins"))
}
