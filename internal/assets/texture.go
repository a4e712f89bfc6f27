package assets

import (
	"fmt"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type textureKey struct {
	path   string
	repeat int
}

// TextureCache uploads textures on first request and hands out the same texture afterwards.
// It must be used from the render thread after the window exists.
type TextureCache struct {
	dir    string
	loaded map[textureKey]rl.Texture2D
	failed map[textureKey]error
}

// NewTextureCache returns a cache resolving relative paths against dir.
func NewTextureCache(dir string) *TextureCache {
	return &TextureCache{
		dir:    dir,
		loaded: make(map[textureKey]rl.Texture2D),
		failed: make(map[textureKey]error),
	}
}

// Get returns the texture for path, tiled repeat times when repeat > 1. A failed load is
// remembered so a missing file is only reported once.
func (c *TextureCache) Get(path string, repeat float32) (rl.Texture2D, error) {
	key := textureKey{path: path, repeat: int(repeat)}
	if tex, ok := c.loaded[key]; ok {
		return tex, nil
	}
	if err, ok := c.failed[key]; ok {
		return rl.Texture2D{}, err
	}
	tex, err := c.load(key)
	if err != nil {
		c.failed[key] = err
		return rl.Texture2D{}, err
	}
	c.loaded[key] = tex
	return tex, nil
}

func (c *TextureCache) load(key textureKey) (rl.Texture2D, error) {
	src, err := DecodeImage(resolve(c.dir, key.path))
	if err != nil {
		return rl.Texture2D{}, err
	}
	img := rl.NewImageFromImage(PrepareImage(src, key.repeat))
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if !rl.IsTextureValid(tex) {
		return rl.Texture2D{}, fmt.Errorf("upload texture %s: invalid texture", key.path)
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	return tex, nil
}

// Unload frees every uploaded texture.
func (c *TextureCache) Unload() {
	for k, tex := range c.loaded {
		rl.UnloadTexture(tex)
		delete(c.loaded, k)
	}
}

func resolve(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}
