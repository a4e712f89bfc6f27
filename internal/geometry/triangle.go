package geometry

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// degenerateEpsilon is the squared-length threshold below which a triangle normal or a
// cross-product axis is treated as zero.
const degenerateEpsilon = 1e-12

// Triangle is three points in world space.
type Triangle struct {
	A rl.Vector3
	B rl.Vector3
	C rl.Vector3
}

// NewTriangle returns the triangle a, b, c.
func NewTriangle(a, b, c rl.Vector3) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Bounds returns the box enclosing the three vertices.
func (t Triangle) Bounds() rl.BoundingBox {
	return ExpandByPoint(ExpandByPoint(rl.NewBoundingBox(t.A, t.A), t.B), t.C)
}

// Area returns the triangle's area. Zero for collinear or coincident vertices.
func (t Triangle) Area() float32 {
	n := rl.Vector3CrossProduct(rl.Vector3Subtract(t.B, t.A), rl.Vector3Subtract(t.C, t.A))
	return rl.Vector3Length(n) * 0.5
}

// IntersectsTriangle reports whether t touches box, using the separating axis test over the
// three box face normals, the triangle normal and the nine edge cross products.
// A degenerate triangle skips the normal axis, so a zero-area triangle sitting on a point
// inside the box intersects it.
func IntersectsTriangle(box rl.BoundingBox, t Triangle) bool {
	if !IntersectsBox(t.Bounds(), box) {
		return false
	}
	if ContainsPoint(box, t.A) && ContainsPoint(box, t.B) && ContainsPoint(box, t.C) {
		return true
	}

	center := Center(box)
	half := HalfSize(box)

	v0 := rl.Vector3Subtract(t.A, center)
	v1 := rl.Vector3Subtract(t.B, center)
	v2 := rl.Vector3Subtract(t.C, center)

	f0 := rl.Vector3Subtract(v1, v0)
	f1 := rl.Vector3Subtract(v2, v1)
	f2 := rl.Vector3Subtract(v0, v2)

	// Box face normals are already covered by the bounds overlap above.
	axes := [10]rl.Vector3{
		rl.Vector3CrossProduct(f0, f1),
		{X: 0, Y: -f0.Z, Z: f0.Y},
		{X: 0, Y: -f1.Z, Z: f1.Y},
		{X: 0, Y: -f2.Z, Z: f2.Y},
		{X: f0.Z, Y: 0, Z: -f0.X},
		{X: f1.Z, Y: 0, Z: -f1.X},
		{X: f2.Z, Y: 0, Z: -f2.X},
		{X: -f0.Y, Y: f0.X, Z: 0},
		{X: -f1.Y, Y: f1.X, Z: 0},
		{X: -f2.Y, Y: f2.X, Z: 0},
	}
	for _, axis := range axes {
		if rl.Vector3DotProduct(axis, axis) < degenerateEpsilon {
			continue
		}
		if separated(axis, v0, v1, v2, half) {
			return false
		}
	}
	return true
}

// separated reports whether the triangle projection and the box projection on axis do not overlap.
func separated(axis, v0, v1, v2, half rl.Vector3) bool {
	p0 := rl.Vector3DotProduct(v0, axis)
	p1 := rl.Vector3DotProduct(v1, axis)
	p2 := rl.Vector3DotProduct(v2, axis)
	r := half.X*math32.Abs(axis.X) + half.Y*math32.Abs(axis.Y) + half.Z*math32.Abs(axis.Z)
	lo := math32.Min(p0, math32.Min(p1, p2))
	hi := math32.Max(p0, math32.Max(p1, p2))
	return lo > r || hi < -r
}
