package solids

import (
	"context"
	"errors"

	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/geom"
	"github.com/vk/sceneforge/internal/scene"
)

// ExtrudeKind is the registry kind of Extrude.
const ExtrudeKind = "extrude"

// Extrude sweeps the profile of another node. The profile is referenced by
// path, so the solid depends on that node instead of its own children.
type Extrude struct {
	builder.Base
	Profile string  `param:"profile"`
	Depth   float64 `param:"depth"`
}

// NewExtrude returns an extrusion of unit depth with no profile set.
func NewExtrude() *Extrude {
	return &Extrude{Depth: 1}
}

// Kind implements scene.Builder.
func (*Extrude) Kind() string { return ExtrudeKind }

// References implements scene.Referencer.
func (e *Extrude) References() []string {
	if e.Profile == "" {
		return nil
	}
	return []string{e.Profile}
}

// DependenciesOf implements scene.Builder. An unresolvable reference yields
// no dependencies; Rebuild reports it.
func (e *Extrude) DependenciesOf(n *scene.Node) []*scene.Node {
	if e.Profile == "" {
		return nil
	}
	target, err := n.Resolve(e.Profile)
	if err != nil {
		return nil
	}
	return []*scene.Node{target}
}

// Rebuild implements scene.Builder.
func (e *Extrude) Rebuild(_ context.Context, n *scene.Node) (bool, error) {
	if e.Profile == "" {
		return false, builder.Fail(n, errors.New("no profile reference set"))
	}
	target, err := n.Resolve(e.Profile)
	if err != nil {
		return false, builder.Fail(n, err)
	}
	profile, ok := target.Content().(*geom.Profile)
	if !ok {
		return false, builder.Failf(n, "referenced node %s has no profile", target)
	}
	mesh, err := geom.Extrude(profile, float32(e.Depth))
	if err != nil {
		return false, builder.Fail(n, err)
	}
	return builder.Store(n, mesh), nil
}

// Duplicate implements scene.Builder.
func (e *Extrude) Duplicate() scene.Builder { return builder.Duplicate(e) }
