package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"museum/internal/debug"
	"museum/internal/render"
	"museum/internal/room"
	"museum/internal/walkthrough"
)

const (
	gridExtent     = 60
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
	fovy           = 60
)

// Scene holds the first-person camera and draws the museum: skybox, optional editor grid,
// the room tree and, when debugging, the collision boxes.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	room       *room.Room
	walker     *walkthrough.Controller
	renderer   *render.Renderer
	debug      *debug.Debug
	sky        *skybox
	cursorDone bool
}

// New returns a scene viewing r through w. skyboxPath may be empty.
func New(r *room.Room, w *walkthrough.Controller, renderer *render.Renderer, dbg *debug.Debug, skyboxPath string) *Scene {
	s := &Scene{
		room:     r,
		walker:   w,
		renderer: renderer,
		debug:    dbg,
		sky:      newSkybox(skyboxPath),
	}
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	w.Apply(&s.Camera)
	return s
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Update runs once per frame. When input is true the mouse turns the view and WASD or the
// arrow keys walk; the terminal passes false while it is open. The cursor is captured on the first frame.
func (s *Scene) Update(dt float32, input bool) {
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	if input {
		delta := rl.GetMouseDelta()
		s.walker.Look(delta.X, delta.Y)
		forward, right := moveInput(rl.IsKeyDown)
		s.walker.Move(forward, right, dt)
	}
	s.walker.Apply(&s.Camera)
}

// moveInput maps held keys to forward/right amounts in [-1, 1].
func moveInput(down func(key int32) bool) (forward, right float32) {
	if down(rl.KeyW) || down(rl.KeyUp) {
		forward++
	}
	if down(rl.KeyS) || down(rl.KeyDown) {
		forward--
	}
	if down(rl.KeyD) || down(rl.KeyRight) {
		right++
	}
	if down(rl.KeyA) || down(rl.KeyLeft) {
		right--
	}
	return forward, right
}

// Draw renders the 3D scene. Call after ClearBackground and before 2D overlays (terminal, debug).
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	s.sky.draw(s.Camera.Position)
	if s.GridVisible {
		drawEditorGrid()
	}
	s.renderer.Draw(s.room.Node())
	if s.debug != nil && s.debug.ShowBounds {
		s.renderer.DrawBounds(s.room.BoundingBoxes())
	}
	rl.EndMode3D()
}

// Unload frees the skybox. Meshes belong to the renderer.
func (s *Scene) Unload() {
	s.sky.unload()
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// X red, Y green, Z blue
	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
