package profiles

import (
	"context"

	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/geom"
	"github.com/vk/sceneforge/internal/scene"
)

const (
	// CircleKind is the registry kind of Circle.
	CircleKind = "circle"
	// HollowCircleKind is the registry kind of HollowCircle.
	HollowCircleKind = "hollow_circle"

	defaultSegments = 32
)

// Circle generates a polygonal circle.
type Circle struct {
	builder.Base
	Radius   float64 `param:"radius"`
	Segments int     `param:"segments"`
}

// NewCircle returns a unit circle builder.
func NewCircle() *Circle {
	return &Circle{Radius: 1, Segments: defaultSegments}
}

// Kind implements scene.Builder.
func (*Circle) Kind() string { return CircleKind }

// DependenciesOf implements scene.Builder.
func (*Circle) DependenciesOf(*scene.Node) []*scene.Node { return nil }

// Rebuild implements scene.Builder.
func (c *Circle) Rebuild(_ context.Context, n *scene.Node) (bool, error) {
	p, err := c.profile()
	if err != nil {
		return false, builder.Fail(n, err)
	}
	return builder.Store(n, p), nil
}

func (c *Circle) profile() (*geom.Profile, error) {
	return geom.Circle(float32(c.Radius), c.Segments)
}

// Duplicate implements scene.Builder.
func (c *Circle) Duplicate() scene.Builder { return builder.Duplicate(c) }

// HollowCircle is a circle with a concentric hole. The outer outline and the
// hole are both generated by Circle; HollowCircle only adds the wall. The
// outline's radius and segments are scene parameters of the ring itself.
//
// A wall thickness outside (0, radius) fails the rebuild rather than
// producing a degenerate ring.
type HollowCircle struct {
	builder.Base
	Outer         Circle  `param:",squash"`
	WallThickness float64 `param:"wall_thickness"`
}

// NewHollowCircle returns a unit ring builder with a 0.1 wall.
func NewHollowCircle() *HollowCircle {
	return &HollowCircle{Outer: *NewCircle(), WallThickness: 0.1}
}

// Kind implements scene.Builder.
func (*HollowCircle) Kind() string { return HollowCircleKind }

// DependenciesOf implements scene.Builder.
func (*HollowCircle) DependenciesOf(*scene.Node) []*scene.Node { return nil }

// Rebuild implements scene.Builder.
func (h *HollowCircle) Rebuild(_ context.Context, n *scene.Node) (bool, error) {
	if h.WallThickness <= 0 || h.WallThickness >= h.Outer.Radius {
		return false, builder.Failf(n, "wall thickness %g must be within (0, %g): %w",
			h.WallThickness, h.Outer.Radius, geom.ErrDegenerate)
	}
	outer, err := h.Outer.profile()
	if err != nil {
		return false, builder.Fail(n, err)
	}
	inner := Circle{Radius: h.Outer.Radius - h.WallThickness, Segments: h.Outer.Segments}
	hole, err := inner.profile()
	if err != nil {
		return false, builder.Fail(n, err)
	}
	ring, err := geom.WithHole(outer, hole)
	if err != nil {
		return false, builder.Fail(n, err)
	}
	return builder.Store(n, ring), nil
}

// Duplicate implements scene.Builder.
func (h *HollowCircle) Duplicate() scene.Builder { return builder.Duplicate(h) }
