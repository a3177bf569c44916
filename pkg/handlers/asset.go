package handlers

import (
	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/fileops"
	"github.com/arthur-debert/plugset/pkg/types"
)

// assetHandler installs web assets into the www root, and into the platform
// www root as well when the caller asks for it.
type assetHandler struct {
	fs types.FS
}

func (h *assetHandler) Install(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error {
	if d.Src == "" {
		return errors.MissingAttr("src", string(types.KindAsset), plugin.ID)
	}
	if d.Target == "" {
		return errors.MissingAttr("target", string(types.KindAsset), plugin.ID)
	}

	if err := fileops.CopyFile(h.fs, plugin.Dir, d.Src, project.WwwDir(), d.Target, opts.Link); err != nil {
		return err
	}
	if opts.UsePlatformWww {
		return fileops.CopyFile(h.fs, plugin.Dir, d.Src, project.PlatformWwwDir(), d.Target, opts.Link)
	}
	return nil
}

func (h *assetHandler) Uninstall(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error {
	target := d.Target
	if target == "" {
		target = d.Src
	}
	if target == "" {
		return errors.MissingAttr("target", string(types.KindAsset), plugin.ID)
	}

	if err := fileops.RemoveAndPruneAncestors(h.fs, project.WwwDir(), target, ""); err != nil {
		return err
	}
	if opts.UsePlatformWww {
		return fileops.RemoveAndPruneAncestors(h.fs, project.PlatformWwwDir(), target, "")
	}
	return nil
}

// Verify interface compliance
var _ Handler = (*assetHandler)(nil)
