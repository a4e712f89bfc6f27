package assets

import (
	"context"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.opentelemetry.io/otel/attribute"

	"museum/internal/room"
	"museum/internal/scenegraph"
	"museum/internal/telemetry"
)

var tracer = telemetry.Tracer("assets")

// Model draws a loaded raylib model with a world transform.
type Model struct {
	model rl.Model
}

// Draw renders the model at world. Must be called between BeginMode3D and EndMode3D.
func (m *Model) Draw(world rl.Matrix) {
	saved := m.model.Transform
	m.model.Transform = rl.MatrixMultiply(saved, world)
	rl.DrawModel(m.model, rl.Vector3Zero(), 1, rl.White)
	m.model.Transform = saved
}

// ModelLoader loads decoration models (glTF, OBJ, ...) from an asset directory.
// It needs a GL context, so use it after the window is open.
type ModelLoader struct {
	dir    string
	models []rl.Model
}

// NewModelLoader returns a loader resolving decoration paths against dir.
func NewModelLoader(dir string) *ModelLoader {
	return &ModelLoader{dir: dir}
}

// Load reads the decoration's model file and returns a node placed per the decoration.
func (l *ModelLoader) Load(ctx context.Context, d room.Decoration) (*scenegraph.Node, error) {
	_, span := tracer.Start(ctx, "assets.LoadModel")
	defer span.End()

	path := resolve(l.dir, d.Path)
	span.SetAttributes(attribute.String("asset.path", path), attribute.String("asset.kind", d.Kind.String()))

	// raylib logs and returns an empty model for a missing file; check first so the caller gets an error.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	m := rl.LoadModel(path)
	if !rl.IsModelValid(m) {
		return nil, fmt.Errorf("load model %s: invalid model", path)
	}
	l.models = append(l.models, m)

	n := scenegraph.New(d.Kind.String())
	n.Drawable = &Model{model: m}
	d.PlaceNode(n)
	return n, nil
}

// Unload frees every model this loader produced.
func (l *ModelLoader) Unload() {
	for _, m := range l.models {
		rl.UnloadModel(m)
	}
	l.models = nil
}
