// Package manifest parses a plugin.xml manifest into the plugin handle and
// its install directives. Only directive-bearing elements are read: plugin
// identity, top-level js-module elements, and the android platform section.
package manifest

import (
	"path/filepath"

	"github.com/beevik/etree"

	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/logging"
	"github.com/arthur-debert/plugset/pkg/types"
)

// ManifestFile is the manifest's file name inside a plugin directory.
const ManifestFile = "plugin.xml"

// PlatformName is the platform section this installer reads.
const PlatformName = "android"

// Manifest is the parsed plugin manifest.
type Manifest struct {
	Plugin     types.Plugin
	Name       string
	Directives []types.Directive
}

// Load reads and parses pluginDir/plugin.xml.
func Load(pluginDir string) (*Manifest, error) {
	path := filepath.Join(pluginDir, ManifestFile)

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "cannot read manifest %q", path)
	}

	root := doc.Root()
	if root == nil || root.Tag != "plugin" {
		return nil, errors.Newf(errors.ErrManifestInvalid, "%q has no <plugin> root element", path)
	}
	id := root.SelectAttrValue("id", "")
	if id == "" {
		return nil, errors.Newf(errors.ErrManifestInvalid, "%q is missing the plugin id", path)
	}

	m := &Manifest{
		Plugin: types.Plugin{ID: id, Dir: pluginDir},
	}
	if name := root.SelectElement("name"); name != nil {
		m.Name = name.Text()
	}

	// js-module elements outside a platform section apply to every platform.
	for _, el := range root.SelectElements("js-module") {
		m.Directives = append(m.Directives, directiveFrom(types.KindJSModule, el))
	}
	for _, el := range root.SelectElements("asset") {
		m.Directives = append(m.Directives, directiveFrom(types.KindAsset, el))
	}

	for _, platform := range root.SelectElements("platform") {
		if platform.SelectAttrValue("name", "") != PlatformName {
			continue
		}
		for _, el := range platform.ChildElements() {
			kind, ok := kindForTag(el.Tag)
			if !ok {
				continue
			}
			m.Directives = append(m.Directives, directiveFrom(kind, el))
		}
	}

	logger := logging.GetLogger("manifest")
	logger.Debug().
		Str("plugin", id).
		Int("directives", len(m.Directives)).
		Msg("manifest loaded")

	return m, nil
}

// kindForTag maps a manifest element tag to a directive kind.
func kindForTag(tag string) (types.Kind, bool) {
	switch types.Kind(tag) {
	case types.KindSourceFile, types.KindLibFile, types.KindResourceFile,
		types.KindFramework, types.KindAsset, types.KindJSModule:
		return types.Kind(tag), true
	default:
		return "", false
	}
}

// directiveFrom builds a Directive from a manifest element. Attribute
// presence is not validated here; the handlers check required attributes so
// the error can name the owning plugin.
func directiveFrom(kind types.Kind, el *etree.Element) types.Directive {
	return types.Directive{
		Kind:      kind,
		Src:       el.SelectAttrValue("src", ""),
		Target:    el.SelectAttrValue("target", ""),
		TargetDir: el.SelectAttrValue("target-dir", ""),
		Name:      el.SelectAttrValue("name", ""),
		Parent:    el.SelectAttrValue("parent", ""),
		Custom:    el.SelectAttrValue("custom", "") == "true",
		Type:      el.SelectAttrValue("type", ""),
	}
}
