package paths

import (
	"path/filepath"
	"strings"
)

// ExtClass is the closed classification of source file extensions that the
// destination resolver branches on.
type ExtClass int

const (
	// ClassOther covers everything without special layout rules.
	ClassOther ExtClass = iota

	// ClassSource is a compiled source file (.java, .kt).
	ClassSource

	// ClassAIDL is an Android interface definition file (.aidl).
	ClassAIDL

	// ClassNativeLib is a prebuilt native library (.so).
	ClassNativeLib
)

// ClassifyExt classifies a source path by its extension.
func ClassifyExt(src string) ExtClass {
	switch strings.ToLower(filepath.Ext(src)) {
	case ".java", ".kt":
		return ClassSource
	case ".aidl":
		return ClassAIDL
	case ".so":
		return ClassNativeLib
	default:
		return ClassOther
	}
}
