package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"museum/internal/config"
)

// Open creates the window described by cfg. Fullscreen uses the primary monitor's size.
// ESC is reserved for the terminal; close via the window button.
func Open(cfg config.WindowConfig) {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	if cfg.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(cfg.Width, cfg.Height, cfg.Title)
	if cfg.Fullscreen {
		rl.SetWindowSize(rl.GetMonitorWidth(0), rl.GetMonitorHeight(0))
	}
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(cfg.TargetFPS)
}

// Close closes the window. GPU resources must be unloaded before.
func Close() {
	rl.CloseWindow()
}

// Run drives the main loop on an open window until the user closes it.
// Each frame it calls update with the frame time in seconds, then clears the screen and calls draw.
func Run(update func(dt float32), draw func()) {
	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
