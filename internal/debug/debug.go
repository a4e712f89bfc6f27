package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"museum/internal/config"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging features. All overlays are off by default.
// ShowBounds is read by the scene, which outlines the room's collision boxes in 3D.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowBounds   bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// FromConfig returns a Debug system with the overlays the config turns on.
func FromConfig(c config.DebugConfig) *Debug {
	return &Debug{ShowFPS: c.ShowFPS, ShowMemAlloc: c.ShowMemAlloc, ShowBounds: c.ShowBounds}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetShowBounds sets whether collision boxes are outlined.
func (d *Debug) SetShowBounds(show bool) {
	d.ShowBounds = show
}

// Lines returns the overlay text for this frame and advances the frame counter.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Lines(fps int32) []string {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	var lines []string
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", fps)
		}
		lines = append(lines, d.lastFpsText)
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		lines = append(lines, d.lastMemText)
	}
	return lines
}

// Draw renders any enabled 2D overlays right-aligned at the top of the screen.
// Call after scene and terminal in the draw loop.
func (d *Debug) Draw() {
	screenW := int32(rl.GetScreenWidth())
	y := int32(fpsPadding)
	for _, text := range d.Lines(rl.GetFPS()) {
		w := rl.MeasureText(text, fpsFontSize)
		rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, rl.Green)
		y += fpsLineHeight
	}
}
