package profiles

import (
	"context"

	"github.com/vk/sceneforge/internal/builder"
	"github.com/vk/sceneforge/internal/geom"
	"github.com/vk/sceneforge/internal/scene"
)

// RectangleKind is the registry kind of Rectangle.
const RectangleKind = "rectangle"

// Rectangle generates a width x height profile.
type Rectangle struct {
	builder.Base
	Width  float64 `param:"width"`
	Height float64 `param:"height"`
}

// NewRectangle returns a unit square builder.
func NewRectangle() *Rectangle {
	return &Rectangle{Width: 1, Height: 1}
}

// Kind implements scene.Builder.
func (*Rectangle) Kind() string { return RectangleKind }

// DependenciesOf implements scene.Builder. Primitive shapes depend on nothing.
func (*Rectangle) DependenciesOf(*scene.Node) []*scene.Node { return nil }

// Rebuild implements scene.Builder.
func (r *Rectangle) Rebuild(_ context.Context, n *scene.Node) (bool, error) {
	p, err := geom.Rectangle(float32(r.Width), float32(r.Height))
	if err != nil {
		return false, builder.Fail(n, err)
	}
	return builder.Store(n, p), nil
}

// Duplicate implements scene.Builder.
func (r *Rectangle) Duplicate() scene.Builder { return builder.Duplicate(r) }
