// Package workspace computes the facts scaffolding actions depend on: where
// the workspace is, what kind of project it holds, and which package
// manager drives it.
package workspace

import (
	"path/filepath"

	"qwikshortcuts/internal/paths"
	"qwikshortcuts/internal/project"
)

// Context is a snapshot of a workspace. It is a value; recompute it with
// Load or hold it in a Tracker.
type Context struct {
	Root              string                 `json:"root"`
	Exists            bool                   `json:"exists"`
	Classification    project.Classification `json:"classification"`
	PackageManager    project.PackageManager `json:"package_manager,omitempty"`
	HasPackageManager bool                   `json:"has_package_manager"`
	Markers           project.MarkerTable    `json:"-"`
}

// Load inspects root. A missing root yields Exists=false and nothing else.
func Load(root string, markers project.MarkerTable) Context {
	if markers == nil {
		markers = project.DefaultMarkers()
	}
	ctx := Context{Root: root, Markers: markers}
	if root == "" {
		return ctx
	}
	if ok, err := paths.DirExists(root); err != nil || !ok {
		return ctx
	}
	ctx.Exists = true
	ctx.Classification = project.Classify(filepath.Join(root, paths.ManifestName))
	ctx.PackageManager, ctx.HasPackageManager = project.DetectPackageManager(root, markers)
	return ctx
}

// Watched reports whether a change to the named file can alter the context.
func (c Context) Watched(name string) bool {
	base := filepath.Base(name)
	return base == paths.ManifestName || c.Markers.Contains(base)
}
