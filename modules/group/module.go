// Package group provides the "group" builder, a named container whose
// children are edited individually.
package group

import (
	"context"

	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/registry"
	"github.com/vk/sceneforge/internal/scene"
)

// Kind is the registry kind of Group.
const Kind = "group"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Group depends on its children and generates nothing.
type Group struct{}

// Kind implements scene.Builder.
func (*Group) Kind() string { return Kind }

// DependenciesOf implements scene.Builder.
func (*Group) DependenciesOf(n *scene.Node) []*scene.Node { return n.Children() }

// Rebuild implements scene.Builder. A group never changes observably.
func (*Group) Rebuild(context.Context, *scene.Node) (bool, error) { return false, nil }

// ProducesOwnContent implements scene.Builder.
func (*Group) ProducesOwnContent(*scene.Node) bool { return false }

// ProducesOwnChildren implements scene.Builder.
func (*Group) ProducesOwnChildren(*scene.Node) bool { return true }

// Duplicate implements scene.Builder.
func (g *Group) Duplicate() scene.Builder { return builder.Duplicate(g) }

// Register registers the group builder.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Kind, &registry.RegisteredBuilder{
		New:         func() scene.Builder { return &Group{} },
		Description: "Container for other nodes.",
	})
}
