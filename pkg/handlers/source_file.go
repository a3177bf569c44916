package handlers

import (
	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/fileops"
	"github.com/arthur-debert/plugset/pkg/logging"
	"github.com/arthur-debert/plugset/pkg/paths"
	"github.com/arthur-debert/plugset/pkg/types"
)

// sourceFileHandler installs platform source files. Destination resolution
// goes through the layout resolver so plugins targeting the legacy project
// layout keep working unchanged.
type sourceFileHandler struct {
	fs types.FS
}

func (h *sourceFileHandler) validate(d types.Directive, plugin types.Plugin) error {
	if d.Src == "" {
		return errors.MissingAttr("src", string(types.KindSourceFile), plugin.ID)
	}
	if d.TargetDir == "" {
		return errors.MissingAttr("target-dir", string(types.KindSourceFile), plugin.ID)
	}
	return nil
}

func (h *sourceFileHandler) Install(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error {
	if err := h.validate(d, plugin); err != nil {
		return err
	}

	dest := paths.ResolveSourceFileDestination(d.TargetDir, d.Src)
	logger := logging.GetLogger("handlers.sourcefile")
	logger.Debug().
		Str("src", d.Src).
		Str("dest", dest).
		Msg("installing source file")

	if opts.Force {
		return fileops.CopyFile(h.fs, plugin.Dir, d.Src, project.ProjectDir(), dest, opts.Link)
	}
	return fileops.CopyNewFile(h.fs, plugin.Dir, d.Src, project.ProjectDir(), dest, opts.Link)
}

func (h *sourceFileHandler) Uninstall(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error {
	if err := h.validate(d, plugin); err != nil {
		return err
	}

	dest := paths.ResolveSourceFileDestination(d.TargetDir, d.Src)
	logger := logging.GetLogger("handlers.sourcefile")
	logger.Debug().
		Str("dest", dest).
		Msg("uninstalling source file")

	// Compiled sources live in per-package directories that install created
	// as a side effect; prune those on the way out.
	if paths.ClassifyExt(d.Src) == paths.ClassSource {
		return fileops.RemoveAndPruneAncestors(h.fs, project.ProjectDir(), dest, "src")
	}
	return fileops.RemoveFile(h.fs, project.ProjectDir(), dest)
}

// Verify interface compliance
var _ Handler = (*sourceFileHandler)(nil)
