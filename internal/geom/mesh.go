package geom

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices []mgl32.Vec3
	Indices  []uint32
}

// Triangles returns the number of triangles in the mesh.
func (m *Mesh) Triangles() int { return len(m.Indices) / 3 }

// Extrude sweeps a profile along +Z by depth. Every loop contributes side
// walls. Top and bottom caps are added when the profile has a shape the
// generators can close exactly; see addCaps.
func Extrude(p *Profile, depth float32) (*Mesh, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("extrusion depth %g: %w", depth, ErrNonPositive)
	}
	if len(p.Outer) < 3 {
		return nil, fmt.Errorf("extruding a loop of %d points: %w", len(p.Outer), ErrDegenerate)
	}

	m := &Mesh{}
	for _, loop := range append([]Loop{p.Outer}, p.Holes...) {
		m.addWalls(loop, depth)
	}
	m.addCaps(p, depth)
	return m, nil
}

// addCaps closes the top and bottom faces. A profile without holes gets a
// triangle fan over its outer loop, which is exact for the convex profiles
// the builders produce. A profile with a single hole of the same point
// count, such as a hollow circle, gets a ring of quads stitched between the
// two loops. Any other holed profile is left without caps, since that would
// need general polygon triangulation.
func (m *Mesh) addCaps(p *Profile, depth float32) {
	switch {
	case len(p.Holes) == 0:
		m.addCap(p.Outer, 0, true)
		m.addCap(p.Outer, depth, false)
	case len(p.Holes) == 1 && len(p.Holes[0]) == len(p.Outer):
		// Holes wind clockwise; the ring wants both loops counterclockwise.
		inner := slices.Clone(p.Holes[0])
		slices.Reverse(inner)
		inner = alignLoop(inner, p.Outer)
		m.addRing(p.Outer, inner, 0, true)
		m.addRing(p.Outer, inner, depth, false)
	}
}

func (m *Mesh) addWalls(loop Loop, depth float32) {
	base := uint32(len(m.Vertices))
	n := uint32(len(loop))
	for _, pt := range loop {
		m.Vertices = append(m.Vertices, pt.Vec3(0), pt.Vec3(depth))
	}
	for i := uint32(0); i < n; i++ {
		j := (i + 1) % n
		b0, t0 := base+2*i, base+2*i+1
		b1, t1 := base+2*j, base+2*j+1
		m.Indices = append(m.Indices, b0, b1, t1, b0, t1, t0)
	}
}

func (m *Mesh) addCap(loop Loop, z float32, flip bool) {
	base := uint32(len(m.Vertices))
	for _, pt := range loop {
		m.Vertices = append(m.Vertices, pt.Vec3(z))
	}
	for i := uint32(1); i+1 < uint32(len(loop)); i++ {
		if flip {
			m.Indices = append(m.Indices, base, base+i+1, base+i)
		} else {
			m.Indices = append(m.Indices, base, base+i, base+i+1)
		}
	}
}

// addRing caps the band between outer and inner, both counterclockwise and
// of equal length, with inner[i] facing outer[i].
func (m *Mesh) addRing(outer, inner Loop, z float32, flip bool) {
	base := uint32(len(m.Vertices))
	n := uint32(len(outer))
	for _, pt := range outer {
		m.Vertices = append(m.Vertices, pt.Vec3(z))
	}
	for _, pt := range inner {
		m.Vertices = append(m.Vertices, pt.Vec3(z))
	}
	for i := uint32(0); i < n; i++ {
		j := (i + 1) % n
		o0, o1 := base+i, base+j
		i0, i1 := base+n+i, base+n+j
		if flip {
			m.Indices = append(m.Indices, o0, i1, o1, o0, i0, i1)
		} else {
			m.Indices = append(m.Indices, o0, o1, i1, o0, i1, i0)
		}
	}
}

// alignLoop rotates loop so that it starts at the point whose direction from
// loop's center best matches ref[0]'s direction from ref's center.
func alignLoop(loop, ref Loop) Loop {
	want := ref[0].Sub(ref.Center())
	if want.Len() == 0 {
		return loop
	}
	want = want.Normalize()

	c := loop.Center()
	best, bestDot := 0, float32(-2)
	for i, pt := range loop {
		d := pt.Sub(c)
		if d.Len() == 0 {
			continue
		}
		if dot := d.Normalize().Dot(want); dot > bestDot {
			best, bestDot = i, dot
		}
	}
	return append(slices.Clone(loop[best:]), loop[:best]...)
}

// Merge concatenates meshes into one, re-basing indices.
func Merge(meshes ...*Mesh) *Mesh {
	out := &Mesh{}
	for _, m := range meshes {
		if m == nil {
			continue
		}
		base := uint32(len(out.Vertices))
		out.Vertices = append(out.Vertices, m.Vertices...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}
	return out
}

// Equal reports whether two meshes are identical.
func (m *Mesh) Equal(other *Mesh) bool {
	if m == nil || other == nil {
		return m == other
	}
	return slices.Equal(m.Vertices, other.Vertices) && slices.Equal(m.Indices, other.Indices)
}

// String summarizes the mesh for reports.
func (m *Mesh) String() string {
	return fmt.Sprintf("mesh(vertices=%d triangles=%d)", len(m.Vertices), m.Triangles())
}
