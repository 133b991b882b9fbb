package profiles

import (
	"context"

	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/geom"
	"github.com/vk/sceneforge/internal/scene"
)

// ProfileWithHoleKind is the registry kind of ProfileWithHole.
const ProfileWithHoleKind = "profile_with_hole"

// ProfileWithHole cuts its second child profile out of its first.
type ProfileWithHole struct {
	builder.Base
}

// Kind implements scene.Builder.
func (*ProfileWithHole) Kind() string { return ProfileWithHoleKind }

// DependenciesOf implements scene.Builder: the outer and hole children.
func (*ProfileWithHole) DependenciesOf(n *scene.Node) []*scene.Node {
	children := n.Children()
	if len(children) > 2 {
		children = children[:2]
	}
	return children
}

// ProducesOwnChildren implements scene.Builder.
func (*ProfileWithHole) ProducesOwnChildren(*scene.Node) bool { return true }

// Rebuild implements scene.Builder.
func (*ProfileWithHole) Rebuild(_ context.Context, n *scene.Node) (bool, error) {
	if n.NumChildren() < 2 {
		return false, builder.Failf(n, "needs an outer and a hole profile child, has %d children", n.NumChildren())
	}
	outer, ok := n.Child(0).Content().(*geom.Profile)
	if !ok {
		return false, builder.Failf(n, "outer child %s has no profile", n.Child(0))
	}
	hole, ok := n.Child(1).Content().(*geom.Profile)
	if !ok {
		return false, builder.Failf(n, "hole child %s has no profile", n.Child(1))
	}
	p, err := geom.WithHole(outer, hole)
	if err != nil {
		return false, builder.Fail(n, err)
	}
	return builder.Store(n, p), nil
}

// Duplicate implements scene.Builder.
func (p *ProfileWithHole) Duplicate() scene.Builder { return builder.Duplicate(p) }
