package room

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"museum/internal/scenegraph"
)

// DoorSize is the width taken out of the back and middle walls to leave walkable openings.
const DoorSize float32 = 20

// Grass plane dimensions and texture repeat. The plane extends well past the room.
const (
	grassSize   = 1000
	grassRepeat = 20
	// grassDrop keeps the grass just under the floor so the two don't z-fight.
	grassDrop = 0.1
)

// Fixture names one of the eight walls a room is built from.
type Fixture int

const (
	FixtureGrass Fixture = iota
	FixtureFront
	FixtureBack
	FixtureLeft
	FixtureMiddle
	FixtureRight
	FixtureGround
	FixtureCeiling
)

var fixtureNames = [...]string{
	FixtureGrass:   "Grass",
	FixtureFront:   "Front",
	FixtureBack:    "Back",
	FixtureLeft:    "Left",
	FixtureMiddle:  "Middle",
	FixtureRight:   "Right",
	FixtureGround:  "Ground",
	FixtureCeiling: "Ceiling",
}

func (f Fixture) String() string {
	if f < 0 || int(f) >= len(fixtureNames) {
		return "Fixture(?)"
	}
	return fixtureNames[f]
}

// Materials holds the four surface materials a room uses.
type Materials struct {
	Wall    scenegraph.Material
	Floor   scenegraph.Material
	Ceiling scenegraph.Material
	Grass   scenegraph.Material
}

// DefaultMaterials returns the textures shipped under assets/.
func DefaultMaterials() Materials {
	return Materials{
		Wall:    scenegraph.Material{Texture: "assets/wall-texture.jpeg", DoubleSided: true},
		Floor:   scenegraph.Material{Texture: "assets/floor-texture.jpeg", DoubleSided: true},
		Ceiling: scenegraph.Material{Texture: "assets/ceiling-texture.jpeg", DoubleSided: true},
		Grass:   scenegraph.Material{Texture: "assets/grass-texture.jpeg", Repeat: grassRepeat, DoubleSided: true},
	}
}

// WallSpec describes one wall of the room. Label is the display name; for the front and back
// fixtures it is the other wall's name, which is how the museum's walls have always been labelled.
type WallSpec struct {
	Fixture  Fixture
	Label    string
	Width    float32
	Height   float32
	Position rl.Vector3
	Rotation rl.Vector3
	Material scenegraph.Material
}

// Layout returns the eight wall descriptors for a room of the given size, in build order.
// The room spans x in [-width/2, width/2], z in [0, length], y in [-height/2, height/2].
func Layout(length, height, width float32, m Materials) []WallSpec {
	quarter := float32(math32.Pi) / 2
	return []WallSpec{
		{
			Fixture:  FixtureGrass,
			Label:    "Grass",
			Width:    grassSize,
			Height:   grassSize,
			Position: rl.NewVector3(0, -height/2-grassDrop, length/2),
			Rotation: rl.NewVector3(quarter, 0, 0),
			Material: m.Grass,
		},
		{
			Fixture:  FixtureFront,
			Label:    "Back",
			Width:    width,
			Height:   height,
			Position: rl.NewVector3(0, 0, 0),
			Material: m.Wall,
		},
		{
			Fixture:  FixtureBack,
			Label:    "Front",
			Width:    width - DoorSize/2,
			Height:   height,
			Position: rl.NewVector3(-DoorSize/4, 0, length),
			Material: m.Wall,
		},
		{
			Fixture:  FixtureLeft,
			Label:    "Left",
			Width:    length,
			Height:   height,
			Position: rl.NewVector3(-width/2, 0, length/2),
			Rotation: rl.NewVector3(0, quarter, 0),
			Material: m.Wall,
		},
		{
			Fixture:  FixtureMiddle,
			Label:    "Middle",
			Width:    length - DoorSize,
			Height:   height,
			Position: rl.NewVector3(0, 0, length/2),
			Rotation: rl.NewVector3(0, quarter, 0),
			Material: m.Wall,
		},
		{
			Fixture:  FixtureRight,
			Label:    "Right",
			Width:    length,
			Height:   height,
			Position: rl.NewVector3(width/2, 0, length/2),
			Rotation: rl.NewVector3(0, quarter, 0),
			Material: m.Wall,
		},
		{
			Fixture:  FixtureGround,
			Label:    "Ground",
			Width:    width,
			Height:   length,
			Position: rl.NewVector3(0, -height/2, length/2),
			Rotation: rl.NewVector3(quarter, 0, 0),
			Material: m.Floor,
		},
		{
			Fixture:  FixtureCeiling,
			Label:    "Ceiling",
			Width:    width,
			Height:   length,
			Position: rl.NewVector3(0, height/2, length/2),
			Rotation: rl.NewVector3(quarter, 0, 0),
			Material: m.Ceiling,
		},
	}
}
