package solids

import (
	"context"

	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/geom"
	"github.com/vk/sceneforge/internal/scene"
)

// CompositeKind is the registry kind of Composite.
const CompositeKind = "composite"

// Composite merges the meshes of its children. Children without a mesh,
// such as the profiles the solids are extruded from, are ignored.
type Composite struct {
	builder.Base
}

// Kind implements scene.Builder.
func (*Composite) Kind() string { return CompositeKind }

// ProducesOwnChildren implements scene.Builder.
func (*Composite) ProducesOwnChildren(*scene.Node) bool { return true }

// Rebuild implements scene.Builder.
func (*Composite) Rebuild(_ context.Context, n *scene.Node) (bool, error) {
	var meshes []*geom.Mesh
	for _, c := range n.Children() {
		if m, ok := c.Content().(*geom.Mesh); ok {
			meshes = append(meshes, m)
		}
	}
	if len(meshes) == 0 {
		return false, builder.Failf(n, "none of %d children is a solid", n.NumChildren())
	}
	return builder.Store(n, geom.Merge(meshes...)), nil
}

// Duplicate implements scene.Builder.
func (c *Composite) Duplicate() scene.Builder { return builder.Duplicate(c) }
