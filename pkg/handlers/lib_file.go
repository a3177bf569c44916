package handlers

import (
	"path/filepath"

	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/fileops"
	"github.com/arthur-debert/plugset/pkg/types"
)

// libDir is the fixed destination directory for lib-file directives.
const libDir = "app/libs"

// libFileHandler installs prebuilt libraries into the project's libs
// directory, keyed by source basename.
type libFileHandler struct {
	fs types.FS
}

func (h *libFileHandler) dest(d types.Directive) string {
	return filepath.Join(libDir, filepath.Base(d.Src))
}

func (h *libFileHandler) Install(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error {
	if d.Src == "" {
		return errors.MissingAttr("src", string(types.KindLibFile), plugin.ID)
	}
	if opts.Force {
		return fileops.CopyFile(h.fs, plugin.Dir, d.Src, project.ProjectDir(), h.dest(d), opts.Link)
	}
	return fileops.CopyNewFile(h.fs, plugin.Dir, d.Src, project.ProjectDir(), h.dest(d), opts.Link)
}

func (h *libFileHandler) Uninstall(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error {
	if d.Src == "" {
		return errors.MissingAttr("src", string(types.KindLibFile), plugin.ID)
	}
	return fileops.RemoveFile(h.fs, project.ProjectDir(), h.dest(d))
}

// Verify interface compliance
var _ Handler = (*libFileHandler)(nil)
