package fileops

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/logging"
	"github.com/arthur-debert/plugset/pkg/paths"
	"github.com/arthur-debert/plugset/pkg/types"
)

// RemoveFile removes the file or directory tree at relPath under baseDir.
// A missing target is not an error. The resolved path must lie within
// baseDir.
func RemoveFile(fsys types.FS, baseDir, relPath string) error {
	target := resolveUnder(baseDir, relPath)
	if err := paths.EnsureDestInside(fsys, baseDir, target); err != nil {
		return err
	}
	if _, err := fsys.Lstat(target); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %q", target)
	}

	logger := logging.GetLogger("fileops")
	logger.Debug().Str("path", target).Msg("removing file")
	if err := fsys.RemoveAll(target); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot remove %q", target)
	}
	return nil
}

// RemoveAndPruneAncestors removes relPath under baseDir, then walks upward
// deleting each now-empty ancestor directory. The walk stops at the first
// non-empty or missing ancestor, at baseDir/stopper, or at baseDir itself,
// whichever comes first; neither boundary is ever removed. With an empty
// stopper the boundary is baseDir.
func RemoveAndPruneAncestors(fsys types.FS, baseDir, relPath, stopper string) error {
	target := resolveUnder(baseDir, relPath)
	if err := paths.EnsureDestInside(fsys, baseDir, target); err != nil {
		return err
	}
	if _, err := fsys.Lstat(target); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %q", target)
	}

	logger := logging.GetLogger("fileops")
	logger.Debug().Str("path", target).Str("stopper", stopper).Msg("removing file and pruning ancestors")

	if err := fsys.RemoveAll(target); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot remove %q", target)
	}

	base := filepath.Clean(baseDir)
	stop := base
	if stopper != "" {
		stop = filepath.Join(base, stopper)
	}

	for cur := filepath.Dir(target); cur != stop && cur != base; cur = filepath.Dir(cur) {
		entries, err := fsys.ReadDir(cur)
		if err != nil || len(entries) > 0 {
			break
		}
		if err := fsys.Remove(cur); err != nil {
			break
		}
		logger.Trace().Str("path", cur).Msg("pruned empty directory")
		if filepath.Dir(cur) == cur {
			break
		}
	}
	return nil
}
