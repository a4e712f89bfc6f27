package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"museum/internal/scenegraph"
)

// TextureSource hands out GPU textures for material texture paths.
type TextureSource interface {
	Get(path string, repeat float32) (rl.Texture2D, error)
}

// fallbackColor tints materials whose texture could not be loaded.
var fallbackColor = rl.NewColor(150, 150, 150, 255)

// boundsColor is used for the collision box overlay.
var boundsColor = rl.NewColor(255, 200, 40, 255)

// Renderer draws a scene tree. Box meshes and materials are created on first draw and cached,
// so GPU resources are only allocated after the window/OpenGL context exists.
type Renderer struct {
	textures  TextureSource
	meshes    map[scenegraph.Box]rl.Mesh
	materials map[scenegraph.Material]rl.Material
	// OnTextureError, if set, is called once per material whose texture failed to load.
	OnTextureError func(path string, err error)
}

// New returns a renderer pulling textures from textures.
func New(textures TextureSource) *Renderer {
	return &Renderer{
		textures:  textures,
		meshes:    make(map[scenegraph.Box]rl.Mesh),
		materials: make(map[scenegraph.Material]rl.Material),
	}
}

// Draw renders root and all its descendants. Must be called between BeginMode3D and EndMode3D.
func (r *Renderer) Draw(root *scenegraph.Node) {
	root.Walk(func(n *scenegraph.Node, world rl.Matrix) bool {
		if n.Geometry != nil {
			r.drawBox(*n.Geometry, n.Material, world)
		}
		if n.Drawable != nil {
			n.Drawable.Draw(world)
		}
		return true
	})
}

// DrawBounds outlines each box. Must be called between BeginMode3D and EndMode3D.
func (r *Renderer) DrawBounds(boxes []rl.BoundingBox) {
	for _, b := range boxes {
		rl.DrawBoundingBox(b, boundsColor)
	}
}

func (r *Renderer) drawBox(box scenegraph.Box, m scenegraph.Material, world rl.Matrix) {
	mesh := r.ensureMesh(box)
	mtl := r.ensureMaterial(m)
	if m.DoubleSided {
		rl.DisableBackfaceCulling()
		defer rl.EnableBackfaceCulling()
	}
	rl.DrawMesh(mesh, mtl, world)
}

// ensureMesh creates the cube mesh for box if not yet cached.
func (r *Renderer) ensureMesh(box scenegraph.Box) rl.Mesh {
	if mesh, ok := r.meshes[box]; ok {
		return mesh
	}
	mesh := rl.GenMeshCube(box.Width, box.Height, box.Depth)
	r.meshes[box] = mesh
	return mesh
}

// ensureMaterial creates the material for m if not yet cached. A texture that fails to load
// leaves an untextured grey material.
func (r *Renderer) ensureMaterial(m scenegraph.Material) rl.Material {
	if mtl, ok := r.materials[m]; ok {
		return mtl
	}
	mtl := rl.LoadMaterialDefault()
	tint := rl.White
	if m.Texture != "" && r.textures != nil {
		tex, err := r.textures.Get(m.Texture, m.Repeat)
		if err != nil {
			tint = fallbackColor
			if r.OnTextureError != nil {
				r.OnTextureError(m.Texture, err)
			}
		} else {
			rl.SetMaterialTexture(&mtl, rl.MapAlbedo, tex)
		}
	}
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.materials[m] = mtl
	return mtl
}

// Unload frees cached meshes. Textures belong to the TextureSource.
func (r *Renderer) Unload() {
	for k, mesh := range r.meshes {
		rl.UnloadMesh(&mesh)
		delete(r.meshes, k)
	}
	for k := range r.materials {
		delete(r.materials, k)
	}
}
