package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/types"
)

// Contains reports whether child lies within parent. Both paths are cleaned
// and compared segment-wise, so "/proj-evil" is not inside "/proj".
func Contains(parent, child string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(child))
	if err != nil {
		return false
	}
	return rel == "." ||
		(rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// EnsureSourceInside verifies that src, with symbolic links in both paths
// resolved, is contained within root. src must exist. A lexically-inside
// path whose link target escapes the root is rejected.
func EnsureSourceInside(fsys types.FS, root, src string) error {
	realSrc, err := fsys.Realpath(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve source path %q", src)
	}
	realRoot, err := fsys.Realpath(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve source root %q", root)
	}
	if !Contains(realRoot, realSrc) {
		return errors.Newf(errors.ErrPathEscape,
			"file %q is located outside the plugin directory %q", src, root).
			WithDetail("path", realSrc).
			WithDetail("root", realRoot)
	}
	return nil
}

// EnsureDestInside verifies that dest lies within root. dest need not exist
// yet: symbolic links are resolved on its deepest existing ancestor and the
// remainder re-appended before comparison, which catches escapes through an
// already-present symlinked parent directory.
func EnsureDestInside(fsys types.FS, root, dest string) error {
	realRoot, err := fsys.Realpath(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve destination root %q", root)
	}
	realDest, err := resolveExisting(fsys, dest)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve destination path %q", dest)
	}
	if !Contains(realRoot, realDest) {
		return errors.Newf(errors.ErrPathEscape,
			"destination %q is located outside the project directory %q", dest, root).
			WithDetail("path", realDest).
			WithDetail("root", realRoot)
	}
	return nil
}

// resolveExisting resolves symbolic links in the deepest existing ancestor
// of p and joins the non-existent remainder back on. If nothing on the path
// exists the cleaned path is returned as-is.
func resolveExisting(fsys types.FS, p string) (string, error) {
	p = filepath.Clean(p)

	suffix := ""
	for cur := p; ; cur = filepath.Dir(cur) {
		if _, err := fsys.Stat(cur); err == nil {
			real, err := fsys.Realpath(cur)
			if err != nil {
				return "", err
			}
			return filepath.Join(real, suffix), nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return p, nil
		}
		suffix = filepath.Join(filepath.Base(cur), suffix)
	}
}
