// Package profiles provides the 2D profile builders: primitive shapes and
// profiles cut from other profiles. Each node's content is a *geom.Profile.
package profiles

import (
	"github.com/vk/sceneforge/internal/registry"
	"github.com/vk/sceneforge/internal/scene"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the profile builders.
func (m *Module) Register(r *registry.Registry) {
	r.Register(RectangleKind, &registry.RegisteredBuilder{
		New:         func() scene.Builder { return NewRectangle() },
		Description: "Axis-aligned rectangle centered on the origin.",
	})
	r.Register(CircleKind, &registry.RegisteredBuilder{
		New:         func() scene.Builder { return NewCircle() },
		Description: "Regular polygon approximating a circle.",
	})
	r.Register(HollowCircleKind, &registry.RegisteredBuilder{
		New:         func() scene.Builder { return NewHollowCircle() },
		Description: "Circle with a concentric hole.",
	})
	r.Register(ProfileWithHoleKind, &registry.RegisteredBuilder{
		New:         func() scene.Builder { return &ProfileWithHole{} },
		Description: "First child profile with the second child profile cut out.",
	})
}
