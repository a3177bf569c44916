package types

import "io/fs"

// FS abstracts the filesystem operations the engines need, so they can run
// against the OS filesystem in production and afero in tests.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Removal
	Remove(name string) error
	RemoveAll(path string) error

	// Realpath resolves symbolic links in an existing path. Implementations
	// without symlink support return the cleaned path unchanged.
	Realpath(name string) (string, error)
}
