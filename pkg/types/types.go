// Package types defines the core value types shared across plugset: the
// directive record, the plugin and project handles, install options, and the
// filesystem abstraction the engines run against.
package types

// Kind identifies the directive variant. The set is closed: the handler
// table in pkg/handlers covers exactly these values, and anything else is
// reported as unsupported and skipped.
type Kind string

const (
	KindSourceFile   Kind = "source-file"
	KindLibFile      Kind = "lib-file"
	KindResourceFile Kind = "resource-file"
	KindFramework    Kind = "framework"
	KindAsset        Kind = "asset"
	KindJSModule     Kind = "js-module"
)

// Kinds returns all supported directive kinds in manifest order.
func Kinds() []Kind {
	return []Kind{
		KindSourceFile,
		KindLibFile,
		KindResourceFile,
		KindFramework,
		KindAsset,
		KindJSModule,
	}
}

// Directive describes one resource to install. It is parsed once from the
// plugin manifest and treated as read-only afterwards: uninstall recomputes
// the destination from the same record, so nothing here may be mutated by a
// handler.
type Directive struct {
	Kind Kind

	// Src is the resource path relative to the plugin directory.
	Src string

	// Target is the destination path relative to the applicable root
	// (resource-file, asset).
	Target string

	// TargetDir is the destination directory for source-file directives,
	// in either the modern app/ layout or one of the legacy layouts.
	TargetDir string

	// Name is an optional logical identifier (js-module name).
	Name string

	// Framework-only attributes.
	Parent string
	Custom bool
	Type   string
}

// FrameworkType is the resolved linkage variant of a framework directive.
type FrameworkType string

const (
	FrameworkGradleReference FrameworkType = "gradleReference"
	FrameworkSystemLibrary   FrameworkType = "sys"
	FrameworkSubProject      FrameworkType = "subproject"
)

// EffectiveFrameworkType resolves the framework linkage variant once, so
// install and uninstall dispatch on the same decision. An explicit
// gradleReference type wins; without one, non-custom frameworks default to
// system library references and custom ones to subprojects.
func (d Directive) EffectiveFrameworkType() FrameworkType {
	if d.Type == string(FrameworkGradleReference) {
		return FrameworkGradleReference
	}
	if !d.Custom {
		return FrameworkSystemLibrary
	}
	return FrameworkSubProject
}

// Plugin identifies the plugin supplying a directive. Dir is the absolute
// root of the plugin's files and the trusted source boundary for every copy.
type Plugin struct {
	ID  string
	Dir string
}

// Options carries the caller's install-time switches.
type Options struct {
	// Force bypasses the already-exists guard on copy destinations.
	Force bool

	// Link mirrors source trees with symbolic links instead of copying.
	Link bool

	// UsePlatformWww duplicates web-asset writes into the platform www root.
	UsePlatformWww bool
}

// Project is the installation target. Path accessors return absolute trusted
// roots; the linkage operations are delegated to the build-system layer and
// never implemented by the directive handlers themselves.
type Project interface {
	ProjectDir() string
	WwwDir() string
	PlatformWwwDir() string

	AddGradleReference(parentDir, subDir string) error
	RemoveGradleReference(parentDir, subDir string) error
	AddSystemLibrary(parentDir, subDir string) error
	RemoveSystemLibrary(parentDir, subDir string) error
	AddSubProject(parentDir, subDir string) error
	RemoveSubProject(parentDir, subDir string) error

	// GetCustomSubprojectRelativeDir maps a custom framework source to its
	// plugin-scoped subproject directory, relative to the project root.
	GetCustomSubprojectRelativeDir(pluginID, src string) string
}
