package paths

import (
	"path/filepath"
	"strings"
)

// appMainPrefix is the root of the modern Android source layout. Every
// legacy target directory is rebased under it.
const appMainPrefix = "app/src/main"

// ResolveSourceFileDestination maps a source-file directive's target
// directory and source path to the destination path, relative to the project
// root.
//
// Plugins written for the current project layout declare target directories
// under app/ and are used verbatim. Everything else predates the app/src/main
// restructure and is rebased onto it: compiled sources go to the java tree,
// interface definitions to the aidl tree, native libraries to jniLibs, and
// remaining paths under app/src/main directly. The function is pure so that
// uninstall can recompute the identical destination.
func ResolveSourceFileDestination(targetDir, src string) string {
	base := filepath.Base(src)

	// Modern layout: used verbatim.
	if targetDir == "app" || strings.HasPrefix(targetDir, "app/") {
		return filepath.Join(targetDir, base)
	}

	switch ClassifyExt(src) {
	case ClassSource:
		return filepath.Join(appMainPrefix, "java", stripLayoutRoot(targetDir, "src"), base)
	case ClassAIDL:
		return filepath.Join(appMainPrefix, "aidl", stripLayoutRoot(targetDir, "src"), base)
	}

	switch {
	case targetDir == "libs" || strings.HasPrefix(targetDir, "libs/"):
		if ClassifyExt(src) == ClassNativeLib {
			return filepath.Join(appMainPrefix, "jniLibs", stripLayoutRoot(targetDir, "libs"), base)
		}
		return filepath.Join("app", targetDir, base)
	case targetDir == "src/main" || strings.HasPrefix(targetDir, "src/main/"):
		return filepath.Join("app", targetDir, base)
	default:
		return filepath.Join(appMainPrefix, targetDir, base)
	}
}

// stripLayoutRoot removes a leading layout root ("src" or "libs") from a
// legacy target directory, returning the remainder.
func stripLayoutRoot(targetDir, root string) string {
	if targetDir == root {
		return ""
	}
	return strings.TrimPrefix(targetDir, root+"/")
}
