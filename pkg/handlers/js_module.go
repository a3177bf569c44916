package handlers

import (
	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/fileops"
	"github.com/arthur-debert/plugset/pkg/rewrite"
	"github.com/arthur-debert/plugset/pkg/types"
)

// jsModuleHandler installs javascript modules. Content is transformed, not
// copied: the rewriter wraps it in a registration envelope, so uninstall
// only removes the generated file.
type jsModuleHandler struct {
	fs types.FS
}

func (h *jsModuleHandler) Install(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error {
	if d.Src == "" {
		return errors.MissingAttr("src", string(types.KindJSModule), plugin.ID)
	}

	if err := rewrite.WriteModule(h.fs, project.WwwDir(), d, plugin); err != nil {
		return err
	}
	if opts.UsePlatformWww {
		return rewrite.WriteModule(h.fs, project.PlatformWwwDir(), d, plugin)
	}
	return nil
}

func (h *jsModuleHandler) Uninstall(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error {
	if d.Src == "" {
		return errors.MissingAttr("src", string(types.KindJSModule), plugin.ID)
	}

	relPath := rewrite.ModuleRelPath(plugin.ID, d.Src)
	if err := fileops.RemoveAndPruneAncestors(h.fs, project.WwwDir(), relPath, ""); err != nil {
		return err
	}
	if opts.UsePlatformWww {
		return fileops.RemoveAndPruneAncestors(h.fs, project.PlatformWwwDir(), relPath, "")
	}
	return nil
}

// Verify interface compliance
var _ Handler = (*jsModuleHandler)(nil)
