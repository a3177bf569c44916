// Package rewrite implements the js-module content transform: module files
// are not copied verbatim but wrapped in a registration envelope before
// being written into the web-asset tree.
package rewrite

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/logging"
	"github.com/arthur-debert/plugset/pkg/paths"
	"github.com/arthur-debert/plugset/pkg/types"
)

// ModuleRelPath returns the module's destination path relative to a
// web-asset root: plugins/<pluginID>/<src>. Uninstall prunes from the same
// path, so it must stay in lockstep with WriteModule.
func ModuleRelPath(pluginID, src string) string {
	return filepath.Join("plugins", pluginID, src)
}

// ModuleName returns the registration key for a js-module directive:
// <pluginID>.<name>, where name defaults to the source basename without
// extension.
func ModuleName(d types.Directive, plugin types.Plugin) string {
	name := d.Name
	if name == "" {
		base := filepath.Base(d.Src)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return plugin.ID + "." + name
}

// WriteModule reads the module source, wraps it in the registration
// envelope and writes it under wwwDir. Data-only (.json) sources get an
// export-assignment shim so requiring the module yields the parsed value.
func WriteModule(fsys types.FS, wwwDir string, d types.Directive, plugin types.Plugin) error {
	src := filepath.Join(plugin.Dir, d.Src)
	if _, err := fsys.Stat(src); err != nil {
		return errors.Wrapf(err, errors.ErrSourceNotFound, "%q not found", src)
	}
	if err := paths.EnsureSourceInside(fsys, plugin.Dir, src); err != nil {
		return err
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %q", src)
	}

	// Strip a UTF-8 byte-order marker; it would otherwise end up mid-script.
	content := strings.TrimPrefix(string(data), "\uFEFF")

	if strings.EqualFold(filepath.Ext(d.Src), ".json") {
		content = "module.exports = " + content
	}
	content = fmt.Sprintf("cordova.define(%q, function(require, exports, module) {\n%s\n});\n",
		ModuleName(d, plugin), content)

	dst := filepath.Join(wwwDir, ModuleRelPath(plugin.ID, d.Src))
	if err := paths.EnsureDestInside(fsys, wwwDir, dst); err != nil {
		return err
	}
	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent directory for %q", dst)
	}

	logger := logging.GetLogger("rewrite")
	logger.Debug().
		Str("module", ModuleName(d, plugin)).
		Str("dst", dst).
		Msg("writing js module")

	if err := fsys.WriteFile(dst, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %q", dst)
	}
	return nil
}
