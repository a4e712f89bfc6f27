package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"museum/internal/assets"
	"museum/internal/commands"
	"museum/internal/config"
	"museum/internal/debug"
	"museum/internal/env"
	"museum/internal/graphics"
	"museum/internal/logger"
	"museum/internal/render"
	"museum/internal/room"
	"museum/internal/scene"
	"museum/internal/telemetry"
	"museum/internal/terminal"
	"museum/internal/walkthrough"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "museum:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := env.Load(env.DefaultFile); err != nil {
		return err
	}

	var (
		configPath = flag.String("config", config.Path(), "YAML config file")
		saveConfig = flag.Bool("save-config", false, "write the effective config back to -config and exit")
		overrides  config.Overrides
	)
	flag.Func("length", "room length along Z", float32Flag(&overrides.Length))
	flag.Func("height", "room height along Y", float32Flag(&overrides.Height))
	flag.Func("width", "room width along X", float32Flag(&overrides.Width))
	flag.BoolVar(&overrides.Fullscreen, "fullscreen", false, "use the whole primary monitor")
	flag.StringVar(&overrides.AssetDir, "assets", "", "directory textures and models are resolved against")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err := overrides.Apply(&cfg); err != nil {
		return err
	}
	if *saveConfig {
		return config.Save(*configPath, cfg)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = shutdown(ctx) }()

	log := logger.New()
	slog := log.Slog()
	slog.Info("starting", "config", *configPath, "length", cfg.Room.Length, "height", cfg.Room.Height, "width", cfg.Room.Width)

	graphics.Open(cfg.Window)
	defer graphics.Close()

	textures := assets.NewTextureCache(cfg.Assets.Dir)
	defer textures.Unload()
	models := assets.NewModelLoader(cfg.Assets.Dir)
	defer models.Unload()

	museum, err := room.New(ctx, cfg.Room, models, room.WithMaterials(cfg.Materials()))
	if err != nil {
		slog.Error("room", "err", err)
		return err
	}

	spawn := rl.NewVector3(cfg.Player.Spawn[0], cfg.Player.Spawn[1], cfg.Player.Spawn[2])
	walker := walkthrough.New(museum, spawn, walkthrough.Options{
		Speed:       cfg.Player.Speed,
		Radius:      cfg.Player.Radius,
		Sensitivity: cfg.Player.Sensitivity,
	})
	if walker.Blocked(spawn) {
		slog.Warn("spawn point overlaps a wall", "x", spawn.X, "y", spawn.Y, "z", spawn.Z)
	}

	renderer := render.New(textures)
	renderer.OnTextureError = func(path string, err error) {
		slog.Warn("texture", "path", path, "err", err)
	}
	defer renderer.Unload()

	dbg := debug.FromConfig(cfg.Debug)
	scn := scene.New(museum, walker, renderer, dbg, scene.FindSkybox(cfg.Assets.Dir, cfg.Assets.Skybox))
	scn.SetGridVisible(cfg.Debug.GridVisible)
	defer scn.Unload()

	reg := commands.NewRegistry()
	commands.RegisterMuseum(reg, commands.Museum{
		Grid:     scn.SetGridVisible,
		FPS:      dbg.SetShowFPS,
		MemAlloc: dbg.SetShowMemAlloc,
		Bounds:   dbg.SetShowBounds,
		Room:     museum,
		Walker:   walker,
		Print:    log.Log,
	})
	term := terminal.New(log, reg)
	log.Logf("ESC opens the terminal; cmd help lists %d commands", len(reg.Names()))

	update := func(dt float32) {
		term.Update()
		scn.Update(dt, !term.IsOpen())
	}
	draw := func() {
		scn.Draw()
		term.Draw()
		dbg.Draw()
	}
	graphics.Run(update, draw)
	slog.Info("closed")
	return nil
}

// float32Flag parses a flag value into dst.
func float32Flag(dst *float32) func(string) error {
	return func(s string) error {
		var v float32
		if _, err := fmt.Sscan(s, &v); err != nil {
			return err
		}
		*dst = v
		return nil
	}
}
