package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/types"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(content), 0o644))
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeManifest(t, `<?xml version="1.0" encoding="UTF-8"?>
<plugin id="cordova-plugin-device" version="2.0.0">
    <name>Device</name>

    <js-module src="www/device.js" name="device">
        <clobbers target="device" />
    </js-module>

    <platform name="android">
        <source-file src="src/android/Device.java" target-dir="src/org/apache/cordova/device" />
        <lib-file src="libs/device.jar" />
        <resource-file src="res/xml/device.xml" target="res/xml/device.xml" />
        <framework src="com.google.gms:play-services-location:11.0.1" />
        <framework src="libs/custom" custom="true" parent="app" />
        <asset src="www/extra.js" target="js/extra.js" />
        <config-file target="AndroidManifest.xml" parent="/*">
            <uses-permission android:name="android.permission.CAMERA" />
        </config-file>
    </platform>

    <platform name="ios">
        <source-file src="src/ios/Device.m" />
    </platform>
</plugin>`)

	m, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "cordova-plugin-device", m.Plugin.ID)
	assert.Equal(t, dir, m.Plugin.Dir)
	assert.Equal(t, "Device", m.Name)

	// One top-level js-module plus six android elements; config-file and the
	// ios section contribute nothing.
	require.Len(t, m.Directives, 7)

	jsmod := m.Directives[0]
	assert.Equal(t, types.KindJSModule, jsmod.Kind)
	assert.Equal(t, "www/device.js", jsmod.Src)
	assert.Equal(t, "device", jsmod.Name)

	src := m.Directives[1]
	assert.Equal(t, types.KindSourceFile, src.Kind)
	assert.Equal(t, "src/org/apache/cordova/device", src.TargetDir)

	custom := m.Directives[5]
	assert.Equal(t, types.KindFramework, custom.Kind)
	assert.True(t, custom.Custom)
	assert.Equal(t, "app", custom.Parent)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
	})

	t.Run("malformed xml", func(t *testing.T) {
		dir := writeManifest(t, `<plugin id="x"><unclosed`)
		_, err := Load(dir)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
	})

	t.Run("wrong root element", func(t *testing.T) {
		dir := writeManifest(t, `<widget id="x"></widget>`)
		_, err := Load(dir)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestInvalid))
	})

	t.Run("missing plugin id", func(t *testing.T) {
		dir := writeManifest(t, `<plugin version="1.0"></plugin>`)
		_, err := Load(dir)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestInvalid))
	})
}
