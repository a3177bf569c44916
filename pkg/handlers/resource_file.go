package handlers

import (
	"path/filepath"

	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/fileops"
	"github.com/arthur-debert/plugset/pkg/types"
)

// resourceDir is the fixed destination root for resource-file directives.
const resourceDir = "app/src/main"

// resourceFileHandler installs resources (res/ xml, drawables and the like)
// at their declared target path under the main source set.
type resourceFileHandler struct {
	fs types.FS
}

func (h *resourceFileHandler) validate(d types.Directive, plugin types.Plugin) error {
	if d.Src == "" {
		return errors.MissingAttr("src", string(types.KindResourceFile), plugin.ID)
	}
	if d.Target == "" {
		return errors.MissingAttr("target", string(types.KindResourceFile), plugin.ID)
	}
	return nil
}

func (h *resourceFileHandler) Install(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error {
	if err := h.validate(d, plugin); err != nil {
		return err
	}
	// Resource files always overwrite; the already-exists guard applies only
	// to the Force-gated kinds (source-file, lib-file, custom framework).
	dest := filepath.Join(resourceDir, d.Target)
	return fileops.CopyFile(h.fs, plugin.Dir, d.Src, project.ProjectDir(), dest, opts.Link)
}

func (h *resourceFileHandler) Uninstall(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error {
	if err := h.validate(d, plugin); err != nil {
		return err
	}
	return fileops.RemoveFile(h.fs, project.ProjectDir(), filepath.Join(resourceDir, d.Target))
}

// Verify interface compliance
var _ Handler = (*resourceFileHandler)(nil)
