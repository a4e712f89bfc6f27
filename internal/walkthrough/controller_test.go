package walkthrough

import (
	"context"
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"

	"museum/internal/room"
	"museum/internal/scenegraph"
)

type bareLoader struct{}

func (bareLoader) Load(_ context.Context, d room.Decoration) (*scenegraph.Node, error) {
	n := scenegraph.New(d.Kind.String())
	d.PlaceNode(n)
	return n, nil
}

func newRoom(t *testing.T) *room.Room {
	t.Helper()
	r, err := room.New(context.Background(), room.Dimensions{Length: 100, Height: 50, Width: 80}, bareLoader{})
	require.NoError(t, err)
	return r
}

func TestWalkIntoWallStops(t *testing.T) {
	c := New(newRoom(t), rl.NewVector3(-20, 0, 50), DefaultOptions())
	c.Yaw = math32.Pi / 2

	pos := c.Move(1, 0, 10)

	require.Less(t, pos.X, float32(-0.5))
	require.Greater(t, pos.X, float32(-3))
	require.InDelta(t, 50, pos.Z, 1e-3)
	require.False(t, c.Blocked(pos))
}

func TestWalkThroughGap(t *testing.T) {
	c := New(newRoom(t), rl.NewVector3(-20, 0, 95), DefaultOptions())
	c.Yaw = math32.Pi / 2

	pos := c.Move(1, 0, 2)

	require.InDelta(t, 10, pos.X, 1e-3)
	require.InDelta(t, 95, pos.Z, 1e-3)
}

func TestSlideAlongWall(t *testing.T) {
	c := New(newRoom(t), rl.NewVector3(-20, 0, 50), DefaultOptions())
	c.Yaw = math32.Pi / 4

	pos := c.Move(1, 0, 2)

	require.Less(t, pos.X, float32(-0.5))
	require.InDelta(t, 50+30*math32.Sqrt(0.5), pos.Z, 0.05)
}

func TestStrafe(t *testing.T) {
	c := New(newRoom(t), rl.NewVector3(-20, 0, 50), DefaultOptions())

	pos := c.Move(0, 1, 0.5)

	require.InDelta(t, -27.5, pos.X, 1e-3)
	require.InDelta(t, 50, pos.Z, 1e-3)
}

func TestMoveWithoutInputStaysPut(t *testing.T) {
	spawn := rl.NewVector3(-20, 0, 50)
	c := New(newRoom(t), spawn, DefaultOptions())

	require.Equal(t, spawn, c.Move(0, 0, 1))
	require.Equal(t, spawn, c.Move(1, 0, 0))
}

func TestLookClampsPitch(t *testing.T) {
	c := New(newRoom(t), rl.NewVector3(-20, 0, 50), DefaultOptions())

	c.Look(0, -100000)
	require.InDelta(t, pitchLimit, c.Pitch, 1e-6)
	c.Look(0, 100000)
	require.InDelta(t, -pitchLimit, c.Pitch, 1e-6)

	c.Look(100, 0)
	require.InDelta(t, -0.3, c.Yaw, 1e-6)
}

func TestDirections(t *testing.T) {
	c := New(newRoom(t), rl.NewVector3(-20, 0, 50), DefaultOptions())

	f := c.Forward()
	require.InDelta(t, 1, rl.Vector3Length(f), 1e-6)
	require.InDelta(t, 1, f.Z, 1e-6)
	require.InDelta(t, 0, rl.Vector3DotProduct(f, c.Right()), 1e-6)
}

func TestLookingAtWall(t *testing.T) {
	r := newRoom(t)

	inside := New(r, rl.NewVector3(-20, 0, 50), DefaultOptions())
	require.True(t, inside.LookingAtWall())

	door := New(r, rl.NewVector3(35, 0, 95), DefaultOptions())
	require.False(t, door.LookingAtWall())
}

func TestTeleport(t *testing.T) {
	c := New(newRoom(t), rl.NewVector3(-20, 0, 50), DefaultOptions())

	require.False(t, c.Teleport(rl.NewVector3(0, 0, 50)))
	require.False(t, c.Teleport(rl.NewVector3(1, 0, 50)), "body overlaps the middle wall")
	require.True(t, c.Teleport(rl.NewVector3(20, 0, 50)))
	require.Equal(t, rl.NewVector3(20, 0, 50), c.Position)
}

func TestApply(t *testing.T) {
	c := New(newRoom(t), rl.NewVector3(-20, 0, 50), DefaultOptions())
	var cam rl.Camera3D

	c.Apply(&cam)

	require.Equal(t, c.Position, cam.Position)
	require.InDelta(t, 51, cam.Target.Z, 1e-6)
	require.Equal(t, float32(1), cam.Up.Y)
}
