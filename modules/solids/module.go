// Package solids provides the 3D builders. Each node's content is a
// *geom.Mesh.
package solids

import (
	"github.com/vk/sceneforge/internal/registry"
	"github.com/vk/sceneforge/internal/scene"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the solid builders.
func (m *Module) Register(r *registry.Registry) {
	r.Register(ExtrudeKind, &registry.RegisteredBuilder{
		New:         func() scene.Builder { return NewExtrude() },
		Description: "Sweeps a referenced profile along +Z.",
	})
	r.Register(CompositeKind, &registry.RegisteredBuilder{
		New:         func() scene.Builder { return &Composite{} },
		Description: "Merges the meshes of its children into one solid.",
	})
}
