package bvh

import "math"

// AABB is an axis-aligned bounding box in world space, stored as
// (MinX, MinY, MaxX, MaxY).
type AABB struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewAABB builds an AABB from explicit bounds, swapping per-axis if the
// caller passed them reversed.
func NewAABB(minx, miny, maxx, maxy float64) AABB {
	if minx > maxx {
		minx, maxx = maxx, minx
	}
	if miny > maxy {
		miny, maxy = maxy, miny
	}
	return AABB{minx, miny, maxx, maxy}
}

// Area returns the AABB's rectangle area.
func (a AABB) Area() float64 {
	return (a.MaxX - a.MinX) * (a.MaxY - a.MinY)
}

// Union returns the smallest AABB containing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		math.Min(a.MinX, b.MinX),
		math.Min(a.MinY, b.MinY),
		math.Max(a.MaxX, b.MaxX),
		math.Max(a.MaxY, b.MaxY),
	}
}

// UnionArea returns Union(a, b).Area() without constructing the union.
// This is the hot-path primitive for the best-sibling search.
func (a AABB) UnionArea(b AABB) float64 {
	return (math.Max(a.MaxX, b.MaxX) - math.Min(a.MinX, b.MinX)) *
		(math.Max(a.MaxY, b.MaxY) - math.Min(a.MinY, b.MinY))
}

// Contains reports whether a fully encloses b on both axes.
func (a AABB) Contains(b AABB) bool {
	return a.MinX <= b.MinX && a.MinY <= b.MinY && a.MaxX >= b.MaxX && a.MaxY >= b.MaxY
}

// Overlaps reports whether a and b are not separated on either axis.
func (a AABB) Overlaps(b AABB) bool {
	return a.MinX <= b.MaxX && b.MinX <= a.MaxX && a.MinY <= b.MaxY && b.MinY <= a.MaxY
}

// Grow returns a expanded by g on every side. Leaves store the grown
// ("fat") AABB so small motions don't force a re-insertion.
func (a AABB) Grow(g float64) AABB {
	return AABB{a.MinX - g, a.MinY - g, a.MaxX + g, a.MaxY + g}
}

// segmentEpsilon is the slack in the cross-term comparison of
// IntersectsSegment, absorbing floating-point error at near-parallel
// segment/edge angles without letting real misses through.
const segmentEpsilon = 1e-4

// IntersectsSegment runs the slab test for the line segment (p0, p1)
// against the AABB, expressed as a center/half-extent pair against the
// segment's midpoint/half-delta pair. A node whose fat AABB fails this
// test can never be hit by the segment and is pruned during raycast.
func (a AABB) IntersectsSegment(p0, p1 Vector) bool {
	ex := (a.MaxX - a.MinX) * 0.5
	ey := (a.MaxY - a.MinY) * 0.5
	cx := (a.MinX + a.MaxX) * 0.5
	cy := (a.MinY + a.MaxY) * 0.5

	d := p1.Sub(p0).Mult(0.5)
	mx := (p0.X + p1.X) * 0.5
	my := (p0.Y + p1.Y) * 0.5

	px := mx - cx
	py := my - cy

	if math.Abs(px) > ex+math.Abs(d.X) {
		return false
	}
	if math.Abs(py) > ey+math.Abs(d.Y) {
		return false
	}

	return math.Abs(d.X*py-d.Y*px) <= ex*math.Abs(d.Y)+ey*math.Abs(d.X)+segmentEpsilon
}
