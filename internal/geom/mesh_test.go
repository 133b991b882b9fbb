package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtrude(t *testing.T) {
	p, err := Rectangle(2, 2)
	require.NoError(t, err)

	m, err := Extrude(p, 3)

	require.NoError(t, err)
	// 4 wall quads (8 triangles) plus two 2-triangle caps.
	assert.Equal(t, 12, m.Triangles())
	assert.Len(t, m.Vertices, 8+4+4)
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), len(m.Vertices))
	}
	var maxZ float32
	for _, v := range m.Vertices {
		maxZ = max(maxZ, v.Z())
	}
	assert.Equal(t, float32(3), maxZ)
}

func TestExtrude_WithHoles(t *testing.T) {
	outer, err := Circle(2, 8)
	require.NoError(t, err)
	inner, err := Circle(1.5, 8)
	require.NoError(t, err)
	p, err := WithHole(outer, inner)
	require.NoError(t, err)

	m, err := Extrude(p, 1)

	require.NoError(t, err)
	// Two walls of 8 quads each plus two rings of 8 quads.
	assert.Equal(t, 16*2+16*2, m.Triangles())
	assert.Len(t, m.Vertices, 32+32)

	var capped int
	for tri := 0; tri < m.Triangles(); tri++ {
		a, b, c := m.Vertices[m.Indices[3*tri]], m.Vertices[m.Indices[3*tri+1]], m.Vertices[m.Indices[3*tri+2]]
		if a.Z() != b.Z() || b.Z() != c.Z() {
			continue
		}
		capped++
		assert.False(t, coversPoint(a.Vec2(), b.Vec2(), c.Vec2(), mgl32.Vec2{0, 0}), "cap triangle %d covers the hole", tri)
		area := (b.X()-a.X())*(c.Y()-a.Y()) - (c.X()-a.X())*(b.Y()-a.Y())
		if a.Z() == 0 {
			assert.Less(t, area, float32(0), "bottom cap faces down")
		} else {
			assert.Greater(t, area, float32(0), "top cap faces up")
		}
	}
	assert.Equal(t, 32, capped)
}

func TestExtrude_IrregularHoleIsLeftUncapped(t *testing.T) {
	outer, err := Rectangle(4, 4)
	require.NoError(t, err)
	inner, err := Circle(1, 8)
	require.NoError(t, err)
	p, err := WithHole(outer, inner)
	require.NoError(t, err)

	m, err := Extrude(p, 1)

	require.NoError(t, err)
	assert.Equal(t, (4+8)*2, m.Triangles(), "walls only")
}

// coversPoint reports whether p lies strictly inside triangle abc.
func coversPoint(a, b, c, p mgl32.Vec2) bool {
	side := func(u, v, w mgl32.Vec2) float32 {
		return (v.X()-u.X())*(w.Y()-u.Y()) - (w.X()-u.X())*(v.Y()-u.Y())
	}
	d1, d2, d3 := side(a, b, p), side(b, c, p), side(c, a, p)
	return (d1 > 0 && d2 > 0 && d3 > 0) || (d1 < 0 && d2 < 0 && d3 < 0)
}

func TestExtrude_Errors(t *testing.T) {
	p, _ := Rectangle(1, 1)
	_, err := Extrude(p, 0)
	assert.ErrorIs(t, err, ErrNonPositive)

	_, err = Extrude(&Profile{Outer: Loop{{0, 0}, {1, 0}}}, 1)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestMerge(t *testing.T) {
	a := &Mesh{Vertices: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, Indices: []uint32{0, 1, 2}}
	b := &Mesh{Vertices: []mgl32.Vec3{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}}, Indices: []uint32{0, 2, 1}}

	merged := Merge(a, nil, b)

	want := &Mesh{
		Vertices: append(append([]mgl32.Vec3{}, a.Vertices...), b.Vertices...),
		Indices:  []uint32{0, 1, 2, 3, 5, 4},
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, merged.Equal(want))
	assert.Equal(t, "mesh(vertices=6 triangles=2)", merged.String())
}
