package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

func unitBox() rl.BoundingBox {
	return BoxFromSize(2, 2, 2)
}

func TestContainsPoint(t *testing.T) {
	box := unitBox()

	require.True(t, ContainsPoint(box, rl.NewVector3(0, 0, 0)))
	require.True(t, ContainsPoint(box, rl.NewVector3(1, 1, 1)), "faces are inclusive")
	require.False(t, ContainsPoint(box, rl.NewVector3(1.01, 0, 0)))
	require.False(t, ContainsPoint(box, rl.NewVector3(10000, 10000, 10000)))
}

func TestIntersectsRay(t *testing.T) {
	box := unitBox()

	toward := rl.NewRay(rl.NewVector3(0, 0, -5), rl.NewVector3(0, 0, 1))
	require.True(t, IntersectsRay(box, toward))

	away := rl.NewRay(rl.NewVector3(0, 0, -5), rl.NewVector3(0, 0, -1))
	require.False(t, IntersectsRay(box, away))

	beside := rl.NewRay(rl.NewVector3(3, 0, -5), rl.NewVector3(0, 0, 1))
	require.False(t, IntersectsRay(box, beside))

	inside := rl.NewRay(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 0, 0))
	require.True(t, IntersectsRay(box, inside))
}

func TestIntersectsTriangle(t *testing.T) {
	box := unitBox()

	crossing := NewTriangle(rl.NewVector3(-5, 0, 0), rl.NewVector3(5, 0, 0), rl.NewVector3(0, 5, 0))
	require.True(t, IntersectsTriangle(box, crossing))

	far := NewTriangle(rl.NewVector3(10, 10, 10), rl.NewVector3(11, 10, 10), rl.NewVector3(10, 11, 10))
	require.False(t, IntersectsTriangle(box, far))

	// Bounds overlap but the triangle plane passes beside the box corner.
	corner := NewTriangle(rl.NewVector3(3, 0, 0), rl.NewVector3(0, 3, 0), rl.NewVector3(0, 0, 3.5))
	require.False(t, IntersectsTriangle(box, corner))

	enclosing := NewTriangle(rl.NewVector3(-0.5, 0, 0), rl.NewVector3(0.5, 0, 0), rl.NewVector3(0, 0.5, 0))
	require.True(t, IntersectsTriangle(box, enclosing))
}

func TestIntersectsTriangleDegenerate(t *testing.T) {
	box := unitBox()
	p := rl.NewVector3(0.25, -0.5, 0.75)

	point := NewTriangle(p, p, p)
	require.Equal(t, float32(0), point.Area())
	require.True(t, IntersectsTriangle(box, point))

	outside := rl.NewVector3(4, 4, 4)
	require.False(t, IntersectsTriangle(box, NewTriangle(outside, outside, outside)))

	segment := NewTriangle(rl.NewVector3(-3, 0, 0), rl.NewVector3(3, 0, 0), rl.NewVector3(0, 0, 0))
	require.True(t, IntersectsTriangle(box, segment))
}

func TestTransformBox(t *testing.T) {
	local := BoxFromSize(80, 50, 1)

	moved := TransformBox(local, rl.MatrixTranslate(0, 0, 100))
	require.True(t, Equal(moved, rl.NewBoundingBox(rl.NewVector3(-40, -25, 99.5), rl.NewVector3(40, 25, 100.5)), 1e-4))

	turned := TransformBox(local, rl.MatrixRotateXYZ(rl.NewVector3(0, math32.Pi/2, 0)))
	require.True(t, Equal(turned, rl.NewBoundingBox(rl.NewVector3(-0.5, -25, -40), rl.NewVector3(0.5, 25, 40)), 1e-4))

	laid := TransformBox(local, rl.MatrixRotateXYZ(rl.NewVector3(math32.Pi/2, 0, 0)))
	require.True(t, Equal(laid, rl.NewBoundingBox(rl.NewVector3(-40, -0.5, -25), rl.NewVector3(40, 0.5, 25)), 1e-4))
}

func TestUnion(t *testing.T) {
	a := rl.NewBoundingBox(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 1, 1))
	b := rl.NewBoundingBox(rl.NewVector3(-1, 2, 0.5), rl.NewVector3(0, 3, 4))

	require.Equal(t, rl.NewBoundingBox(rl.NewVector3(-1, 0, 0), rl.NewVector3(1, 3, 4)), Union(a, b))
}
