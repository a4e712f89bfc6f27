package scenegraph

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

func near(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	require.InDelta(t, want.X, got.X, 1e-4)
	require.InDelta(t, want.Y, got.Y, 1e-4)
	require.InDelta(t, want.Z, got.Z, 1e-4)
}

func TestAddOwnership(t *testing.T) {
	root := New("root")
	a := New("a")
	b := New("b")

	require.NoError(t, root.Add(a))
	require.NoError(t, a.Add(b))
	require.Equal(t, root, a.Parent())
	require.Equal(t, a, b.Parent())

	require.ErrorIs(t, root.Add(b), ErrHasParent)
	require.ErrorIs(t, b.Add(root), ErrCycle)
	require.ErrorIs(t, a.Add(a), ErrCycle)
	require.Len(t, root.Children(), 1)
	require.Equal(t, 3, root.Count())
}

func TestChildrenIsCopy(t *testing.T) {
	root := New("root")
	require.NoError(t, root.Add(New("a")))

	kids := root.Children()
	kids[0] = New("other")

	require.Equal(t, "a", root.Children()[0].Name)
}

func TestWorldTransform(t *testing.T) {
	root := New("root")
	root.Position = rl.NewVector3(0, 0, 50)

	wall := New("wall")
	wall.Position = rl.NewVector3(10, 0, 0)
	wall.Rotation = rl.NewVector3(0, math32.Pi/2, 0)
	require.NoError(t, root.Add(wall))

	box := New("box")
	require.NoError(t, wall.Add(box))

	origin := rl.Vector3Transform(rl.Vector3Zero(), box.WorldTransform())
	near(t, rl.NewVector3(10, 0, 50), origin)

	// A point on the box's local X axis ends up on the world Z axis after a quarter turn about Y.
	edge := rl.Vector3Transform(rl.NewVector3(5, 0, 0), box.WorldTransform())
	require.InDelta(t, 10, edge.X, 1e-4)
	require.InDelta(t, 5, math32.Abs(edge.Z-50), 1e-4)
}

func TestZeroScaleIsUnit(t *testing.T) {
	n := &Node{Name: "n", Position: rl.NewVector3(1, 2, 3)}

	got := rl.Vector3Transform(rl.NewVector3(1, 1, 1), n.LocalTransform())
	near(t, rl.NewVector3(2, 3, 4), got)
}

func TestWalkAndFind(t *testing.T) {
	root := New("root")
	a := New("a")
	a.Position = rl.NewVector3(1, 0, 0)
	b := New("b")
	b.Position = rl.NewVector3(0, 2, 0)
	c := New("c")
	require.NoError(t, root.Add(a))
	require.NoError(t, a.Add(b))
	require.NoError(t, root.Add(c))

	var order []string
	positions := map[string]rl.Vector3{}
	root.Walk(func(n *Node, world rl.Matrix) bool {
		order = append(order, n.Name)
		positions[n.Name] = rl.Vector3Transform(rl.Vector3Zero(), world)
		return true
	})
	require.Equal(t, []string{"root", "a", "b", "c"}, order)
	near(t, rl.NewVector3(1, 2, 0), positions["b"])

	var pruned []string
	root.Walk(func(n *Node, _ rl.Matrix) bool {
		pruned = append(pruned, n.Name)
		return n.Name != "a"
	})
	require.Equal(t, []string{"root", "a", "c"}, pruned)

	require.Equal(t, b, root.Find("b"))
	require.Nil(t, root.Find("missing"))
}

func TestWalkFromSubtreeUsesParentTransform(t *testing.T) {
	root := New("root")
	root.Position = rl.NewVector3(0, 0, 7)
	a := New("a")
	require.NoError(t, root.Add(a))

	var got rl.Vector3
	a.Walk(func(_ *Node, world rl.Matrix) bool {
		got = rl.Vector3Transform(rl.Vector3Zero(), world)
		return true
	})
	near(t, rl.NewVector3(0, 0, 7), got)
}
