package room

import (
	"context"
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"museum/internal/geometry"
	"museum/internal/scenegraph"
	"museum/internal/telemetry"
)

// ErrInvalidDimensions is returned by New when a room dimension is not positive, or the
// room is too short to leave the middle wall any width.
var ErrInvalidDimensions = errors.New("room: invalid dimensions")

var tracer = telemetry.Tracer("room")

// Dimensions is the room's extent: Length along Z, Height along Y, Width along X.
type Dimensions struct {
	Length float32 `yaml:"length"`
	Height float32 `yaml:"height"`
	Width  float32 `yaml:"width"`
}

// Option customizes room construction.
type Option func(*options)

type options struct {
	materials   Materials
	decorations []Decoration
}

// WithMaterials replaces the default surface materials.
func WithMaterials(m Materials) Option {
	return func(o *options) { o.materials = m }
}

// WithDecorations replaces the default decorations. An empty list builds a bare room.
func WithDecorations(d []Decoration) Option {
	return func(o *options) { o.decorations = d }
}

// Room is the museum room: eight walls, a set of decorations, and the wall bounding boxes
// used for collision. boxes[i] belongs to walls[i] as of the last RecomputeBoundingBoxes.
type Room struct {
	Length float32
	Height float32
	Width  float32

	node        *scenegraph.Node
	specs       []WallSpec
	walls       []*Wall
	decorations []Decoration
	boxes       []rl.BoundingBox
}

// New builds the room's walls, loads its decorations through loader and computes the wall
// bounding boxes. Decorations are not collidable.
func New(ctx context.Context, dims Dimensions, loader Loader, opts ...Option) (*Room, error) {
	ctx, span := tracer.Start(ctx, "room.New")
	defer span.End()
	span.SetAttributes(
		attribute.Float64("room.length", float64(dims.Length)),
		attribute.Float64("room.height", float64(dims.Height)),
		attribute.Float64("room.width", float64(dims.Width)),
	)

	if dims.Length <= DoorSize || dims.Height <= 0 || dims.Width <= DoorSize/2 {
		err := fmt.Errorf("%w: length=%g height=%g width=%g", ErrInvalidDimensions, dims.Length, dims.Height, dims.Width)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	o := options{
		materials:   DefaultMaterials(),
		decorations: DefaultDecorations(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Room{
		Length:      dims.Length,
		Height:      dims.Height,
		Width:       dims.Width,
		node:        scenegraph.New("room"),
		specs:       Layout(dims.Length, dims.Height, dims.Width, o.materials),
		decorations: append([]Decoration(nil), o.decorations...),
	}

	for _, spec := range r.specs {
		w := NewWall(spec.Width, spec.Height, spec.Position, spec.Rotation, spec.Material)
		w.Node.Name = spec.Fixture.String()
		if err := r.node.Add(w.Node); err != nil {
			return nil, fmt.Errorf("room: add wall %s: %w", spec.Fixture, err)
		}
		r.walls = append(r.walls, w)
	}

	for _, d := range r.decorations {
		n, err := loader.Load(ctx, d)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("room: load decoration %s: %w", d.Kind, err)
		}
		if n.Name == "" {
			n.Name = d.Kind.String()
		}
		if err := r.node.Add(n); err != nil {
			return nil, fmt.Errorf("room: add decoration %s: %w", d.Kind, err)
		}
	}

	r.RecomputeBoundingBoxes()
	span.SetAttributes(attribute.Int("room.boxes", len(r.boxes)))
	return r, nil
}

// RecomputeBoundingBoxes rebuilds the collision list from the walls' current transforms.
func (r *Room) RecomputeBoundingBoxes() {
	r.boxes = make([]rl.BoundingBox, 0, len(r.walls))
	for _, w := range r.walls {
		r.boxes = append(r.boxes, w.BoundingBox())
	}
}

// BoundingBoxes returns a copy of the collision list.
func (r *Room) BoundingBoxes() []rl.BoundingBox {
	out := make([]rl.BoundingBox, len(r.boxes))
	copy(out, r.boxes)
	return out
}

// InsideSolid reports whether p lies inside any wall's bounding box.
func (r *Room) InsideSolid(p rl.Vector3) bool {
	for _, box := range r.boxes {
		if geometry.ContainsPoint(box, p) {
			return true
		}
	}
	return false
}

// RayIntersects reports whether ray hits any wall's bounding box.
func (r *Room) RayIntersects(ray rl.Ray) bool {
	for _, box := range r.boxes {
		if geometry.IntersectsRay(box, ray) {
			return true
		}
	}
	return false
}

// TriangleIntersects reports whether t touches any wall's bounding box.
func (r *Room) TriangleIntersects(t geometry.Triangle) bool {
	for _, box := range r.boxes {
		if geometry.IntersectsTriangle(box, t) {
			return true
		}
	}
	return false
}

// Node returns the root of the room's scene tree.
func (r *Room) Node() *scenegraph.Node {
	return r.node
}

// Walls returns the walls in build order.
func (r *Room) Walls() []*Wall {
	out := make([]*Wall, len(r.walls))
	copy(out, r.walls)
	return out
}

// Wall returns the wall built for f, or nil.
func (r *Room) Wall(f Fixture) *Wall {
	for i, spec := range r.specs {
		if spec.Fixture == f {
			return r.walls[i]
		}
	}
	return nil
}

// Descriptors returns the wall descriptors the room was built from, in build order.
func (r *Room) Descriptors() []WallSpec {
	out := make([]WallSpec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Descriptor returns the descriptor for f.
func (r *Room) Descriptor(f Fixture) (WallSpec, bool) {
	for _, spec := range r.specs {
		if spec.Fixture == f {
			return spec, true
		}
	}
	return WallSpec{}, false
}

// Decorations returns the decoration descriptors in load order.
func (r *Room) Decorations() []Decoration {
	out := make([]Decoration, len(r.decorations))
	copy(out, r.decorations)
	return out
}
