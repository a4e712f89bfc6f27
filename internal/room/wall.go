package room

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"museum/internal/geometry"
	"museum/internal/scenegraph"
)

// WallDepth is the thickness of every wall box.
const WallDepth = 1

// Wall is a width × height × WallDepth box. Node carries the wall's position and rotation;
// the box geometry hangs off it as an untransformed child.
type Wall struct {
	Width    float32
	Height   float32
	Material scenegraph.Material
	Node     *scenegraph.Node

	box *scenegraph.Node
}

// NewWall builds a wall centered at position and rotated by rotation (Euler radians).
func NewWall(width, height float32, position, rotation rl.Vector3, material scenegraph.Material) *Wall {
	node := scenegraph.New("wall")
	node.Position = position
	node.Rotation = rotation

	box := scenegraph.New("box")
	box.Geometry = &scenegraph.Box{Width: width, Height: height, Depth: WallDepth}
	box.Material = material
	// A fresh node can't fail ownership checks.
	_ = node.Add(box)

	return &Wall{
		Width:    width,
		Height:   height,
		Material: material,
		Node:     node,
		box:      box,
	}
}

// LocalBoundingBox returns the box geometry's extents in object space, ignoring the
// wall's position and rotation.
func (w *Wall) LocalBoundingBox() rl.BoundingBox {
	g := w.box.Geometry
	return geometry.BoxFromSize(g.Width, g.Height, g.Depth)
}

// BoundingBox returns the wall's axis-aligned box in world space. It is recomputed from the
// current node transforms on every call.
func (w *Wall) BoundingBox() rl.BoundingBox {
	return geometry.TransformBox(w.LocalBoundingBox(), w.box.WorldTransform())
}
