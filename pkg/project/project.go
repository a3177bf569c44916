// Package project provides the concrete installation-target handle. Path
// accessors and the custom-subproject mapping live here; the gradle linkage
// operations themselves are delegated to a pluggable Linker so the directive
// handlers never touch build files directly.
package project

import (
	"path/filepath"

	"github.com/arthur-debert/plugset/pkg/logging"
	"github.com/arthur-debert/plugset/pkg/types"
)

// Linker performs the build-system side of framework linkage.
type Linker interface {
	AddGradleReference(parentDir, subDir string) error
	RemoveGradleReference(parentDir, subDir string) error
	AddSystemLibrary(parentDir, subDir string) error
	RemoveSystemLibrary(parentDir, subDir string) error
	AddSubProject(parentDir, subDir string) error
	RemoveSubProject(parentDir, subDir string) error
}

// Handle is the types.Project implementation used by the CLI: it holds the
// trusted roots and forwards linkage calls to its Linker.
type Handle struct {
	Dir         string
	Www         string
	PlatformWww string
	Linker      Linker
}

// New creates a Handle with the conventional web-asset roots under dir and
// a logging no-op linker.
func New(dir string) *Handle {
	return &Handle{
		Dir:         dir,
		Www:         filepath.Join(dir, "app", "src", "main", "assets", "www"),
		PlatformWww: filepath.Join(dir, "platform_www"),
		Linker:      LogLinker{},
	}
}

func (h *Handle) ProjectDir() string     { return h.Dir }
func (h *Handle) WwwDir() string         { return h.Www }
func (h *Handle) PlatformWwwDir() string { return h.PlatformWww }

func (h *Handle) AddGradleReference(parentDir, subDir string) error {
	return h.Linker.AddGradleReference(parentDir, subDir)
}

func (h *Handle) RemoveGradleReference(parentDir, subDir string) error {
	return h.Linker.RemoveGradleReference(parentDir, subDir)
}

func (h *Handle) AddSystemLibrary(parentDir, subDir string) error {
	return h.Linker.AddSystemLibrary(parentDir, subDir)
}

func (h *Handle) RemoveSystemLibrary(parentDir, subDir string) error {
	return h.Linker.RemoveSystemLibrary(parentDir, subDir)
}

func (h *Handle) AddSubProject(parentDir, subDir string) error {
	return h.Linker.AddSubProject(parentDir, subDir)
}

func (h *Handle) RemoveSubProject(parentDir, subDir string) error {
	return h.Linker.RemoveSubProject(parentDir, subDir)
}

// GetCustomSubprojectRelativeDir maps a custom framework source to its
// plugin-scoped subproject directory. Scoping by plugin id keeps two plugins
// shipping a framework with the same basename from colliding.
func (h *Handle) GetCustomSubprojectRelativeDir(pluginID, src string) string {
	return filepath.Join("app", "src", "main", "libs", pluginID+"-"+filepath.Base(src))
}

// LogLinker is a Linker that only records the requested linkage at verbose
// level. It stands in until a real gradle integration is wired up by the
// caller.
type LogLinker struct{}

func (LogLinker) log(op, parentDir, subDir string) error {
	logger := logging.GetLogger("project")
	logger.Info().
		Str("op", op).
		Str("parentDir", parentDir).
		Str("subDir", subDir).
		Msg("gradle linkage delegated")
	return nil
}

func (LogLinker) AddGradleReference(parentDir, subDir string) error {
	return LogLinker{}.log("addGradleReference", parentDir, subDir)
}

func (LogLinker) RemoveGradleReference(parentDir, subDir string) error {
	return LogLinker{}.log("removeGradleReference", parentDir, subDir)
}

func (LogLinker) AddSystemLibrary(parentDir, subDir string) error {
	return LogLinker{}.log("addSystemLibrary", parentDir, subDir)
}

func (LogLinker) RemoveSystemLibrary(parentDir, subDir string) error {
	return LogLinker{}.log("removeSystemLibrary", parentDir, subDir)
}

func (LogLinker) AddSubProject(parentDir, subDir string) error {
	return LogLinker{}.log("addSubProject", parentDir, subDir)
}

func (LogLinker) RemoveSubProject(parentDir, subDir string) error {
	return LogLinker{}.log("removeSubProject", parentDir, subDir)
}

// Verify interface compliance
var _ types.Project = (*Handle)(nil)
var _ Linker = LogLinker{}
