package scenegraph

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	// ErrHasParent is returned by Add when the child already belongs to another node.
	ErrHasParent = errors.New("scenegraph: node already has a parent")
	// ErrCycle is returned by Add when the child is the node itself or one of its ancestors.
	ErrCycle = errors.New("scenegraph: adding node would create a cycle")
)

// Material references a texture by path. The renderer turns it into GPU resources on first draw.
// Repeat > 1 tiles the texture that many times across each face. DoubleSided disables
// back-face culling for meshes using it.
type Material struct {
	Texture     string  `yaml:"texture"`
	Repeat      float32 `yaml:"repeat,omitempty"`
	DoubleSided bool    `yaml:"double_sided,omitempty"`
}

// Box is box geometry centered on its node's origin.
type Box struct {
	Width  float32
	Height float32
	Depth  float32
}

// Drawable is anything that can render itself with a world transform (e.g. a loaded model).
type Drawable interface {
	Draw(world rl.Matrix)
}

// Node is one element of the scene tree. Position, Rotation (Euler angles in radians) and Scale
// are values; a zero Scale component is treated as 1. A node exclusively owns its children.
type Node struct {
	Name     string
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3

	Geometry *Box
	Material Material
	Drawable Drawable

	parent   *Node
	children []*Node
}

// New returns an empty node with unit scale.
func New(name string) *Node {
	return &Node{Name: name, Scale: rl.NewVector3(1, 1, 1)}
}

// Add makes child a child of n. A node can only have one parent.
func (n *Node) Add(child *Node) error {
	if child.parent != nil {
		return ErrHasParent
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			return ErrCycle
		}
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// LocalTransform is scale, then rotation, then translation.
func (n *Node) LocalTransform() rl.Matrix {
	sx, sy, sz := n.Scale.X, n.Scale.Y, n.Scale.Z
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	m := rl.MatrixScale(sx, sy, sz)
	m = rl.MatrixMultiply(m, rl.MatrixRotateXYZ(n.Rotation))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(n.Position.X, n.Position.Y, n.Position.Z))
}

// WorldTransform composes the local transforms from n up to its root.
func (n *Node) WorldTransform() rl.Matrix {
	m := n.LocalTransform()
	for p := n.parent; p != nil; p = p.parent {
		m = rl.MatrixMultiply(m, p.LocalTransform())
	}
	return m
}

// Walk visits n and its descendants depth first, passing each node's world transform.
// Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(node *Node, world rl.Matrix) bool) {
	var parentWorld rl.Matrix
	if n.parent != nil {
		parentWorld = n.parent.WorldTransform()
	} else {
		parentWorld = rl.MatrixIdentity()
	}
	n.walk(parentWorld, fn)
}

func (n *Node) walk(parentWorld rl.Matrix, fn func(*Node, rl.Matrix) bool) {
	world := rl.MatrixMultiply(n.LocalTransform(), parentWorld)
	if !fn(n, world) {
		return
	}
	for _, c := range n.children {
		c.walk(world, fn)
	}
}

// Find returns the first node named name in depth-first order, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ rl.Matrix) bool {
		if found != nil {
			return false
		}
		if node.Name == name {
			found = node
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes in the subtree rooted at n, n included.
func (n *Node) Count() int {
	c := 1
	for _, child := range n.children {
		c += child.Count()
	}
	return c
}
