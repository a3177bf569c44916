package fileops

import (
	"path/filepath"

	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/logging"
	"github.com/arthur-debert/plugset/pkg/paths"
	"github.com/arthur-debert/plugset/pkg/types"
)

// CopyFile copies srcRel (relative to srcRoot) to dstRel (relative to
// dstRoot). Directories are copied recursively. With link set, the source
// tree is mirrored with relative symbolic links instead of byte copies.
//
// All path checks happen before the first mutation: the source must exist
// and resolve inside srcRoot even through symlinks, and the destination must
// resolve inside dstRoot.
func CopyFile(fsys types.FS, srcRoot, srcRel, dstRoot, dstRel string, link bool) error {
	logger := logging.GetLogger("fileops")

	src := resolveUnder(srcRoot, srcRel)
	if _, err := fsys.Stat(src); err != nil {
		return errors.Wrapf(err, errors.ErrSourceNotFound, "%q not found", src)
	}
	if err := paths.EnsureSourceInside(fsys, srcRoot, src); err != nil {
		return err
	}

	dst := resolveUnder(dstRoot, dstRel)
	if err := paths.EnsureDestInside(fsys, dstRoot, dst); err != nil {
		return err
	}

	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent directory for %q", dst)
	}

	logger.Debug().
		Str("src", src).
		Str("dst", dst).
		Bool("link", link).
		Msg("copying file")

	if link {
		return symlinkFileOrDirTree(fsys, src, dst)
	}
	return copyRecursive(fsys, src, dst)
}

// CopyNewFile is CopyFile, but fails before any mutation when the
// destination already exists. Used whenever the caller has not requested
// force.
func CopyNewFile(fsys types.FS, srcRoot, srcRel, dstRoot, dstRel string, link bool) error {
	dst := resolveUnder(dstRoot, dstRel)
	if _, err := fsys.Lstat(dst); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "%q already exists", dst).
			WithDetail("path", dst)
	}
	return CopyFile(fsys, srcRoot, srcRel, dstRoot, dstRel, link)
}

// copyRecursive performs a byte-identical copy of a file or directory tree.
func copyRecursive(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %q", src)
	}

	if info.IsDir() {
		if err := fsys.MkdirAll(dst, info.Mode().Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %q", dst)
		}
		entries, err := fsys.ReadDir(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %q", src)
		}
		for _, entry := range entries {
			err := copyRecursive(fsys, filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()))
			if err != nil {
				return err
			}
		}
		return nil
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %q", src)
	}
	if err := fsys.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %q", dst)
	}
	return nil
}

// symlinkFileOrDirTree mirrors src at dst using symbolic links: directories
// become a parallel directory structure, files become relative links. A
// pre-existing destination is replaced.
func symlinkFileOrDirTree(fsys types.FS, src, dst string) error {
	if _, err := fsys.Lstat(dst); err == nil {
		if err := fsys.RemoveAll(dst); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot replace %q", dst)
		}
	}

	info, err := fsys.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %q", src)
	}

	if info.IsDir() {
		if err := fsys.MkdirAll(dst, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %q", dst)
		}
		entries, err := fsys.ReadDir(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %q", src)
		}
		for _, entry := range entries {
			err := symlinkFileOrDirTree(fsys, filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()))
			if err != nil {
				return err
			}
		}
		return nil
	}

	// Link relative to the real parent of the destination so the link
	// survives the project tree being moved as a whole.
	realDir, err := fsys.Realpath(filepath.Dir(dst))
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve %q", filepath.Dir(dst))
	}
	target, err := filepath.Rel(realDir, src)
	if err != nil {
		target = src
	}
	if err := fsys.Symlink(target, dst); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %q to %q", dst, target)
	}
	return nil
}

// resolveUnder joins rel onto root unless rel is already absolute.
func resolveUnder(root, rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(root, rel)
}
