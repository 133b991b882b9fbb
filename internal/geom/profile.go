package geom

import (
	"fmt"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Loop is a closed polyline; the last point connects back to the first.
type Loop []mgl32.Vec2

// Profile is a planar region: one outer loop with optional holes.
type Profile struct {
	Outer Loop
	Holes []Loop
}

// Rectangle returns a width x height profile centered on the origin.
func Rectangle(width, height float32) (*Profile, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rectangle %gx%g: %w", width, height, ErrNonPositive)
	}
	w, h := width/2, height/2
	return &Profile{Outer: Loop{{-w, -h}, {w, -h}, {w, h}, {-w, h}}}, nil
}

// Circle returns a regular polygon approximating a circle of the given radius.
func Circle(radius float32, segments int) (*Profile, error) {
	loop, err := circleLoop(radius, segments)
	if err != nil {
		return nil, err
	}
	return &Profile{Outer: loop}, nil
}

func circleLoop(radius float32, segments int) (Loop, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("circle radius %g: %w", radius, ErrNonPositive)
	}
	if segments < 3 {
		return nil, fmt.Errorf("circle with %d segments: %w", segments, ErrTooFewSegments)
	}
	loop := make(Loop, segments)
	step := 2 * math32.Pi / float32(segments)
	for i := range loop {
		s, c := math32.Sincos(step * float32(i))
		loop[i] = mgl32.Vec2{radius * c, radius * s}
	}
	return loop, nil
}

// WithHole returns a copy of outer with hole's outer loop cut out of it.
// The hole must lie within outer's bounds.
func WithHole(outer, hole *Profile) (*Profile, error) {
	omin, omax := outer.Outer.Bounds()
	hmin, hmax := hole.Outer.Bounds()
	if hmin.X() <= omin.X() || hmin.Y() <= omin.Y() || hmax.X() >= omax.X() || hmax.Y() >= omax.Y() {
		return nil, ErrHoleOutside
	}
	cut := slices.Clone(hole.Outer)
	slices.Reverse(cut)
	return &Profile{
		Outer: slices.Clone(outer.Outer),
		Holes: append(cloneLoops(outer.Holes), cut),
	}, nil
}

// Center returns the mean of the loop's points.
func (l Loop) Center() mgl32.Vec2 {
	var sum mgl32.Vec2
	for _, pt := range l {
		sum = sum.Add(pt)
	}
	if len(l) == 0 {
		return sum
	}
	return sum.Mul(1 / float32(len(l)))
}

// Bounds returns the axis-aligned bounding box of the loop.
func (l Loop) Bounds() (lo, hi mgl32.Vec2) {
	if len(l) == 0 {
		return
	}
	lo, hi = l[0], l[0]
	for _, p := range l[1:] {
		lo = mgl32.Vec2{math32.Min(lo.X(), p.X()), math32.Min(lo.Y(), p.Y())}
		hi = mgl32.Vec2{math32.Max(hi.X(), p.X()), math32.Max(hi.Y(), p.Y())}
	}
	return lo, hi
}

// SignedArea returns the shoelace area; positive for counter-clockwise loops.
func (l Loop) SignedArea() float32 {
	var sum float32
	for i, p := range l {
		q := l[(i+1)%len(l)]
		sum += p.X()*q.Y() - q.X()*p.Y()
	}
	return sum / 2
}

// Area returns the net area of the profile, holes subtracted.
func (p *Profile) Area() float32 {
	area := math32.Abs(p.Outer.SignedArea())
	for _, h := range p.Holes {
		area -= math32.Abs(h.SignedArea())
	}
	return area
}

// Equal reports whether two profiles have identical loops.
func (p *Profile) Equal(other *Profile) bool {
	if p == nil || other == nil {
		return p == other
	}
	return slices.Equal(p.Outer, other.Outer) &&
		slices.EqualFunc(p.Holes, other.Holes, func(a, b Loop) bool { return slices.Equal(a, b) })
}

// String summarizes the profile for reports.
func (p *Profile) String() string {
	return fmt.Sprintf("profile(points=%d holes=%d area=%.4g)", len(p.Outer), len(p.Holes), p.Area())
}

func cloneLoops(loops []Loop) []Loop {
	out := make([]Loop, len(loops))
	for i, l := range loops {
		out[i] = slices.Clone(l)
	}
	return out
}
