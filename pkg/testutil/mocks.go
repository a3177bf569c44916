package testutil

import (
	"path/filepath"

	"github.com/arthur-debert/plugset/pkg/types"
)

// LinkageCall records one delegated linkage operation.
type LinkageCall struct {
	Op        string
	ParentDir string
	SubDir    string
}

// RecordingProject is a types.Project implementation for tests: it serves
// real directories and records every linkage call instead of touching build
// files.
type RecordingProject struct {
	Dir         string
	Www         string
	PlatformWww string

	Calls []LinkageCall

	// LinkageErr, when set, is returned from every linkage operation.
	LinkageErr error
}

func (p *RecordingProject) ProjectDir() string     { return p.Dir }
func (p *RecordingProject) WwwDir() string         { return p.Www }
func (p *RecordingProject) PlatformWwwDir() string { return p.PlatformWww }

func (p *RecordingProject) record(op, parentDir, subDir string) error {
	p.Calls = append(p.Calls, LinkageCall{Op: op, ParentDir: parentDir, SubDir: subDir})
	return p.LinkageErr
}

func (p *RecordingProject) AddGradleReference(parentDir, subDir string) error {
	return p.record("addGradleReference", parentDir, subDir)
}

func (p *RecordingProject) RemoveGradleReference(parentDir, subDir string) error {
	return p.record("removeGradleReference", parentDir, subDir)
}

func (p *RecordingProject) AddSystemLibrary(parentDir, subDir string) error {
	return p.record("addSystemLibrary", parentDir, subDir)
}

func (p *RecordingProject) RemoveSystemLibrary(parentDir, subDir string) error {
	return p.record("removeSystemLibrary", parentDir, subDir)
}

func (p *RecordingProject) AddSubProject(parentDir, subDir string) error {
	return p.record("addSubProject", parentDir, subDir)
}

func (p *RecordingProject) RemoveSubProject(parentDir, subDir string) error {
	return p.record("removeSubProject", parentDir, subDir)
}

// GetCustomSubprojectRelativeDir mirrors the production mapping so handler
// tests exercise the same destination paths.
func (p *RecordingProject) GetCustomSubprojectRelativeDir(pluginID, src string) string {
	return filepath.Join("app", "src", "main", "libs", pluginID+"-"+filepath.Base(src))
}

// Verify interface compliance
var _ types.Project = (*RecordingProject)(nil)
