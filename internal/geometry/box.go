package geometry

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxFromSize returns a box of the given size centered on the origin, the same extents
// raylib's GenMeshCube(width, height, depth) produces.
func BoxFromSize(width, height, depth float32) rl.BoundingBox {
	hw, hh, hd := width*0.5, height*0.5, depth*0.5
	return rl.NewBoundingBox(rl.NewVector3(-hw, -hh, -hd), rl.NewVector3(hw, hh, hd))
}

// ContainsPoint reports whether p lies inside box. Points on a face count as inside.
func ContainsPoint(box rl.BoundingBox, p rl.Vector3) bool {
	return p.X >= box.Min.X && p.X <= box.Max.X &&
		p.Y >= box.Min.Y && p.Y <= box.Max.Y &&
		p.Z >= box.Min.Z && p.Z <= box.Max.Z
}

// IntersectsBox reports whether two boxes overlap or touch.
func IntersectsBox(a, b rl.BoundingBox) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// IntersectsRay reports whether ray hits box. A ray that starts inside the box hits it.
func IntersectsRay(box rl.BoundingBox, ray rl.Ray) bool {
	return rl.GetRayCollisionBox(ray, box).Hit
}

// Center returns the midpoint of box.
func Center(box rl.BoundingBox) rl.Vector3 {
	return rl.NewVector3(
		(box.Min.X+box.Max.X)*0.5,
		(box.Min.Y+box.Max.Y)*0.5,
		(box.Min.Z+box.Max.Z)*0.5,
	)
}

// HalfSize returns half the extent of box on each axis.
func HalfSize(box rl.BoundingBox) rl.Vector3 {
	return rl.NewVector3(
		(box.Max.X-box.Min.X)*0.5,
		(box.Max.Y-box.Min.Y)*0.5,
		(box.Max.Z-box.Min.Z)*0.5,
	)
}

// TransformBox transforms the eight corners of box by m and returns the axis-aligned box
// enclosing them. Rotations other than multiples of 90° grow the result.
func TransformBox(box rl.BoundingBox, m rl.Matrix) rl.BoundingBox {
	corners := [8]rl.Vector3{
		{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Max.Z},
	}
	first := rl.Vector3Transform(corners[0], m)
	out := rl.NewBoundingBox(first, first)
	for _, c := range corners[1:] {
		out = ExpandByPoint(out, rl.Vector3Transform(c, m))
	}
	return out
}

// ExpandByPoint grows box so that it contains p.
func ExpandByPoint(box rl.BoundingBox, p rl.Vector3) rl.BoundingBox {
	box.Min = rl.NewVector3(math32.Min(box.Min.X, p.X), math32.Min(box.Min.Y, p.Y), math32.Min(box.Min.Z, p.Z))
	box.Max = rl.NewVector3(math32.Max(box.Max.X, p.X), math32.Max(box.Max.Y, p.Y), math32.Max(box.Max.Z, p.Z))
	return box
}

// Union returns the smallest box containing both a and b.
func Union(a, b rl.BoundingBox) rl.BoundingBox {
	return ExpandByPoint(ExpandByPoint(a, b.Min), b.Max)
}

// Equal reports whether a and b match within eps on every bound.
func Equal(a, b rl.BoundingBox, eps float32) bool {
	return vecNear(a.Min, b.Min, eps) && vecNear(a.Max, b.Max, eps)
}

func vecNear(a, b rl.Vector3, eps float32) bool {
	return math32.Abs(a.X-b.X) <= eps && math32.Abs(a.Y-b.Y) <= eps && math32.Abs(a.Z-b.Z) <= eps
}
