package walkthrough

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"museum/internal/geometry"
)

// maxStep bounds each collision sub-step to half a wall's depth so fast moves can't tunnel
// through a wall between two checks.
const maxStep = 0.5

// pitchLimit keeps the view just short of straight up or down.
const pitchLimit = math32.Pi/2 - 0.01

// Collider answers the room's collision queries.
type Collider interface {
	InsideSolid(p rl.Vector3) bool
	RayIntersects(ray rl.Ray) bool
	TriangleIntersects(t geometry.Triangle) bool
}

// Options tunes the controller.
type Options struct {
	Speed       float32 // units per second
	Radius      float32 // body radius around the eye
	Sensitivity float32 // radians per pixel of mouse movement
}

// DefaultOptions returns walking speed, body radius and mouse sensitivity suited to a
// room of a hundred units.
func DefaultOptions() Options {
	return Options{Speed: 15, Radius: 1, Sensitivity: 0.003}
}

// Controller is a first-person walker. Yaw 0 looks down +Z; positive pitch looks up.
// Movement stays on the horizontal plane through the eye.
type Controller struct {
	Position rl.Vector3
	Yaw      float32
	Pitch    float32

	opts     Options
	collider Collider
}

// New returns a controller standing at spawn.
func New(c Collider, spawn rl.Vector3, opts Options) *Controller {
	if opts.Speed <= 0 {
		opts.Speed = DefaultOptions().Speed
	}
	if opts.Radius < 0 {
		opts.Radius = 0
	}
	if opts.Sensitivity <= 0 {
		opts.Sensitivity = DefaultOptions().Sensitivity
	}
	return &Controller{Position: spawn, opts: opts, collider: c}
}

// Look turns the view by a mouse delta in pixels.
func (c *Controller) Look(dx, dy float32) {
	c.Yaw -= dx * c.opts.Sensitivity
	c.Pitch -= dy * c.opts.Sensitivity
	c.Pitch = math32.Max(-pitchLimit, math32.Min(pitchLimit, c.Pitch))
}

// Forward returns the unit view direction.
func (c *Controller) Forward() rl.Vector3 {
	sy, cy := math32.Sincos(c.Yaw)
	sp, cp := math32.Sincos(c.Pitch)
	return rl.NewVector3(sy*cp, sp, cy*cp)
}

// Right returns the unit horizontal direction to the right of the view.
func (c *Controller) Right() rl.Vector3 {
	sy, cy := math32.Sincos(c.Yaw)
	return rl.NewVector3(-cy, 0, sy)
}

// Move walks forward/right (each in [-1, 1]) for dt seconds, sliding along walls it runs
// into. It returns the new eye position.
func (c *Controller) Move(forward, right, dt float32) rl.Vector3 {
	sy, cy := math32.Sincos(c.Yaw)
	flat := rl.NewVector3(sy, 0, cy)
	dir := rl.Vector3Add(rl.Vector3Scale(flat, forward), rl.Vector3Scale(c.Right(), right))
	length := rl.Vector3Length(dir)
	if length == 0 || dt <= 0 {
		return c.Position
	}
	dist := c.opts.Speed * dt
	if length > 1 {
		dir = rl.Vector3Scale(dir, 1/length)
	}
	delta := rl.Vector3Scale(dir, dist)

	steps := int(math32.Ceil(rl.Vector3Length(delta) / maxStep))
	step := rl.Vector3Scale(delta, 1/float32(steps))
	for i := 0; i < steps; i++ {
		if !c.tryStep(step) {
			break
		}
	}
	return c.Position
}

// tryStep moves by step, or by its X or Z part alone when the full step is blocked.
// It reports whether the controller moved at all.
func (c *Controller) tryStep(step rl.Vector3) bool {
	for _, s := range []rl.Vector3{step, {X: step.X}, {Z: step.Z}} {
		if s.X == 0 && s.Z == 0 {
			continue
		}
		next := rl.Vector3Add(c.Position, s)
		if !c.Blocked(next) {
			c.Position = next
			return true
		}
	}
	return false
}

// Blocked reports whether a body with its eye at p would overlap a wall.
func (c *Controller) Blocked(p rl.Vector3) bool {
	if c.collider.InsideSolid(p) {
		return true
	}
	if c.opts.Radius == 0 {
		return false
	}
	return c.collider.TriangleIntersects(c.body(p))
}

// body is a horizontal triangle inscribed in the body circle around p.
func (c *Controller) body(p rl.Vector3) geometry.Triangle {
	r := c.opts.Radius
	var pts [3]rl.Vector3
	for i := range pts {
		s, co := math32.Sincos(math32.Pi/2 + float32(i)*2*math32.Pi/3)
		pts[i] = rl.NewVector3(p.X+r*co, p.Y, p.Z+r*s)
	}
	return geometry.NewTriangle(pts[0], pts[1], pts[2])
}

// Teleport moves the eye to p unless p is blocked. It reports whether it moved.
func (c *Controller) Teleport(p rl.Vector3) bool {
	if c.Blocked(p) {
		return false
	}
	c.Position = p
	return true
}

// LookingAtWall reports whether the view ray hits any wall.
func (c *Controller) LookingAtWall() bool {
	return c.collider.RayIntersects(rl.NewRay(c.Position, c.Forward()))
}

// Apply points cam from the eye along the view direction.
func (c *Controller) Apply(cam *rl.Camera3D) {
	cam.Position = c.Position
	cam.Target = rl.Vector3Add(c.Position, c.Forward())
	cam.Up = rl.NewVector3(0, 1, 0)
}
