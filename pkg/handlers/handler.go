package handlers

import (
	"github.com/arthur-debert/plugset/pkg/filesystem"
	"github.com/arthur-debert/plugset/pkg/logging"
	"github.com/arthur-debert/plugset/pkg/registry"
	"github.com/arthur-debert/plugset/pkg/types"
)

// Handler is the behavior pair for one directive kind. Install and
// Uninstall are exact inverses: uninstall recomputes the same destination
// from the same directive and removes what install created.
type Handler interface {
	Install(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error
	Uninstall(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error
}

// HandlerFunc is one side of a Handler, as handed to the orchestration layer.
type HandlerFunc func(d types.Directive, plugin types.Plugin, project types.Project, opts types.Options) error

// Registry is the fixed directive-kind dispatch table.
type Registry struct {
	store registry.Registry[Handler]
}

// NewRegistry builds the handler table over the given filesystem. The set
// of kinds is fixed at construction; there is no runtime registration
// surface beyond this.
func NewRegistry(fsys types.FS) *Registry {
	r := &Registry{store: registry.New[Handler]()}
	registry.MustRegister[Handler](r.store, string(types.KindSourceFile), &sourceFileHandler{fs: fsys})
	registry.MustRegister[Handler](r.store, string(types.KindLibFile), &libFileHandler{fs: fsys})
	registry.MustRegister[Handler](r.store, string(types.KindResourceFile), &resourceFileHandler{fs: fsys})
	registry.MustRegister[Handler](r.store, string(types.KindFramework), &frameworkHandler{fs: fsys})
	registry.MustRegister[Handler](r.store, string(types.KindAsset), &assetHandler{fs: fsys})
	registry.MustRegister[Handler](r.store, string(types.KindJSModule), &jsModuleHandler{fs: fsys})
	return r
}

// NewDefaultRegistry builds the handler table over the OS filesystem.
func NewDefaultRegistry() *Registry {
	return NewRegistry(filesystem.NewOS())
}

// GetInstaller returns the install behavior for kind, or nil for an
// unsupported kind. The nil case is reported through the log as a verbose
// diagnostic; callers are expected to skip the directive, not fail.
func (r *Registry) GetInstaller(kind types.Kind) HandlerFunc {
	h, err := r.store.Get(string(kind))
	if err != nil {
		logger := logging.GetLogger("handlers")
		logger.Debug().
			Str("kind", string(kind)).
			Msg("unsupported directive kind, skipping")
		return nil
	}
	return h.Install
}

// GetUninstaller returns the uninstall behavior for kind, or nil for an
// unsupported kind.
func (r *Registry) GetUninstaller(kind types.Kind) HandlerFunc {
	h, err := r.store.Get(string(kind))
	if err != nil {
		logger := logging.GetLogger("handlers")
		logger.Debug().
			Str("kind", string(kind)).
			Msg("unsupported directive kind, skipping")
		return nil
	}
	return h.Uninstall
}

// Kinds returns the supported directive kinds in sorted order.
func (r *Registry) Kinds() []string {
	return r.store.List()
}
