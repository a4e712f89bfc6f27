package assets

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	xdraw "golang.org/x/image/draw"
)

// maxTextureSize bounds the side of any prepared texture, tiled or not.
const maxTextureSize = 2048

// DecodeImage reads an image file (JPEG, PNG or BMP). raylib's default build has no JPEG
// decoder, so textures are decoded here and uploaded as raw pixels.
func DecodeImage(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// PrepareImage resizes img to power-of-two sides no larger than maxTextureSize. When repeat is
// above 1 it instead tiles img repeat×repeat times into a square no larger than maxTextureSize.
func PrepareImage(img image.Image, repeat int) image.Image {
	if repeat > 1 {
		cell := maxTextureSize / repeat
		if cell < 1 {
			cell = 1
		}
		return Tile(img, repeat, cell)
	}
	b := img.Bounds()
	w, h := nextPowerOfTwo(b.Dx()), nextPowerOfTwo(b.Dy())
	if w != b.Dx() || h != b.Dy() {
		return transform.Resize(img, w, h, transform.Linear)
	}
	return img
}

// Tile draws img repeat×repeat times into a square canvas, each copy scaled to cell×cell pixels.
func Tile(img image.Image, repeat, cell int) *image.RGBA {
	if repeat < 1 {
		repeat = 1
	}
	side := repeat * cell
	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	// Scale once, then copy the scaled cell into every slot.
	scaled := image.NewRGBA(image.Rect(0, 0, cell, cell))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	for y := 0; y < repeat; y++ {
		for x := 0; x < repeat; x++ {
			r := image.Rect(x*cell, y*cell, (x+1)*cell, (y+1)*cell)
			xdraw.Copy(dst, r.Min, scaled, scaled.Bounds(), xdraw.Src, nil)
		}
	}
	return dst
}

// nextPowerOfTwo returns the smallest power of two >= n, capped at maxTextureSize.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n && p < maxTextureSize {
		p <<= 1
	}
	return p
}
