package handlers

import (
	"path/filepath"

	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/fileops"
	"github.com/arthur-debert/plugset/pkg/logging"
	"github.com/arthur-debert/plugset/pkg/types"
)

// frameworkHandler links a framework into the project: either a custom
// framework copied in as a plugin-scoped subproject, or a bare reference to
// a system library. The actual build-file mutation is delegated to the
// project's linkage operations.
//
// Uninstall reconstructs the identical parentDir/subDir/type decisions from
// the directive, so both sides must stay in lockstep.
type frameworkHandler struct {
	fs types.FS
}

func (h *frameworkHandler) parentDir(d types.Directive, project types.Project) string {
	if d.Parent == "" {
		return project.ProjectDir()
	}
	if filepath.IsAbs(d.Parent) {
		return filepath.Clean(d.Parent)
	}
	return filepath.Join(project.ProjectDir(), d.Parent)
}

func (h *frameworkHandler) Install(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error {
	if d.Src == "" {
		return errors.MissingAttr("src", string(types.KindFramework), plugin.ID)
	}

	logger := logging.GetLogger("handlers.framework")
	logger.Info().
		Str("src", d.Src).
		Msg("installing Android library")

	parentDir := h.parentDir(d, project)

	var subDir string
	if d.Custom {
		subRel := project.GetCustomSubprojectRelativeDir(plugin.ID, d.Src)
		var err error
		if opts.Force {
			err = fileops.CopyFile(h.fs, plugin.Dir, d.Src, project.ProjectDir(), subRel, opts.Link)
		} else {
			err = fileops.CopyNewFile(h.fs, plugin.Dir, d.Src, project.ProjectDir(), subRel, opts.Link)
		}
		if err != nil {
			return err
		}
		subDir = filepath.Join(project.ProjectDir(), subRel)
	} else {
		subDir = d.Src
	}

	switch d.EffectiveFrameworkType() {
	case types.FrameworkGradleReference:
		return project.AddGradleReference(parentDir, subDir)
	case types.FrameworkSystemLibrary:
		return project.AddSystemLibrary(parentDir, subDir)
	default:
		return project.AddSubProject(parentDir, subDir)
	}
}

func (h *frameworkHandler) Uninstall(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error {
	if d.Src == "" {
		return errors.MissingAttr("src", string(types.KindFramework), plugin.ID)
	}

	logger := logging.GetLogger("handlers.framework")
	logger.Info().
		Str("src", d.Src).
		Msg("uninstalling Android library")

	parentDir := h.parentDir(d, project)

	var subDir string
	if d.Custom {
		subRel := project.GetCustomSubprojectRelativeDir(plugin.ID, d.Src)
		if err := fileops.RemoveFile(h.fs, project.ProjectDir(), subRel); err != nil {
			return err
		}
		subDir = filepath.Join(project.ProjectDir(), subRel)

		// The shared parent dir goes once the last subproject is gone.
		parDir := filepath.Dir(subDir)
		if entries, err := h.fs.ReadDir(parDir); err == nil && len(entries) == 0 {
			if err := h.fs.Remove(parDir); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot remove %q", parDir)
			}
		}
	} else {
		subDir = d.Src
	}

	switch d.EffectiveFrameworkType() {
	case types.FrameworkGradleReference:
		return project.RemoveGradleReference(parentDir, subDir)
	case types.FrameworkSystemLibrary:
		return project.RemoveSystemLibrary(parentDir, subDir)
	default:
		return project.RemoveSubProject(parentDir, subDir)
	}
}

// Verify interface compliance
var _ Handler = (*frameworkHandler)(nil)
