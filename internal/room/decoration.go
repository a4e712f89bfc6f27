package room

import (
	"context"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"museum/internal/scenegraph"
)

// DecorationKind names one of the decorative objects placed in the room.
type DecorationKind int

const (
	DecorationPhilopoemen DecorationKind = iota
	DecorationNeptune
	DecorationBench
	DecorationBonsai
	DecorationLight
)

var decorationNames = [...]string{
	DecorationPhilopoemen: "Philopoemen",
	DecorationNeptune:     "Neptune",
	DecorationBench:       "Bench",
	DecorationBonsai:      "Bonsai",
	DecorationLight:       "Light",
}

func (k DecorationKind) String() string {
	if k < 0 || int(k) >= len(decorationNames) {
		return "Decoration(?)"
	}
	return decorationNames[k]
}

// Decoration is a model loaded from Path, uniformly scaled by Scale and placed at
// Position/Rotation. Decorations never take part in collision.
type Decoration struct {
	Kind     DecorationKind
	Path     string
	Scale    float32
	Position rl.Vector3
	Rotation rl.Vector3
}

// Loader turns a decoration into a scene node, loading whatever asset it points at.
// The returned node must not have a parent.
type Loader interface {
	Load(ctx context.Context, d Decoration) (*scenegraph.Node, error)
}

// DefaultDecorations returns the five sculptures and furnishings of the museum room.
// Paths are relative to the asset directory.
func DefaultDecorations() []Decoration {
	pi := float32(math32.Pi)
	return []Decoration{
		{
			Kind:     DecorationPhilopoemen,
			Path:     "objects/philopoemen/scene.gltf",
			Scale:    0.04,
			Position: rl.NewVector3(5, -8, 60),
			Rotation: rl.NewVector3(pi/2, -pi, pi/2),
		},
		{
			Kind:     DecorationNeptune,
			Path:     "objects/neptune/scene.gltf",
			Scale:    1,
			Position: rl.NewVector3(25, -10, 9),
			Rotation: rl.NewVector3(-pi/2, 0, pi/2),
		},
		{
			Kind:     DecorationBench,
			Path:     "objects/bench/scene.gltf",
			Scale:    0.08,
			Position: rl.NewVector3(-15, -10, 40),
			Rotation: rl.NewVector3(pi/2, pi, pi/2),
		},
		{
			Kind:     DecorationBonsai,
			Path:     "objects/bonsai/scene.gltf",
			Scale:    0.1,
			Position: rl.NewVector3(-25, -10, 0),
			Rotation: rl.NewVector3(pi/2, pi, 0),
		},
		{
			Kind:     DecorationLight,
			Path:     "objects/light/scene.gltf",
			Scale:    0.008,
			Position: rl.NewVector3(-15, 3.6, 43),
			Rotation: rl.NewVector3(pi/2, pi, 0),
		},
	}
}

// PlaceNode applies the decoration's scale, position and rotation to n.
// Loaders call it on the node they return.
func (d Decoration) PlaceNode(n *scenegraph.Node) {
	s := d.Scale
	if s == 0 {
		s = 1
	}
	n.Scale = rl.NewVector3(s, s, s)
	n.Position = d.Position
	n.Rotation = d.Rotation
}
