package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"museum/internal/room"
	"museum/internal/scenegraph"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/museum.yaml"

// PathEnv names the environment variable that overrides DefaultPath.
const PathEnv = "MUSEUM_CONFIG"

// Config holds everything the walkthrough reads at startup. Persisted across runs.
type Config struct {
	Window WindowConfig    `yaml:"window"`
	Room   room.Dimensions `yaml:"room"`
	Assets AssetsConfig    `yaml:"assets"`
	Player PlayerConfig    `yaml:"player"`
	Debug  DebugConfig     `yaml:"debug"`
}

// WindowConfig controls the game window.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int32  `yaml:"target_fps"`
}

// AssetsConfig points at textures and models. Texture and model paths are relative to Dir.
type AssetsConfig struct {
	Dir            string              `yaml:"dir"`
	WallTexture    scenegraph.Material `yaml:"wall"`
	FloorTexture   scenegraph.Material `yaml:"floor"`
	CeilingTexture scenegraph.Material `yaml:"ceiling"`
	GrassTexture   scenegraph.Material `yaml:"grass"`
	Skybox         string              `yaml:"skybox,omitempty"`
}

// PlayerConfig is the walkthrough camera.
type PlayerConfig struct {
	Spawn       [3]float32 `yaml:"spawn"`
	Speed       float32    `yaml:"speed"`
	Radius      float32    `yaml:"radius"`
	Sensitivity float32    `yaml:"sensitivity"`
}

// DebugConfig holds debug overlays and the editor grid.
type DebugConfig struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowBounds   bool `yaml:"show_bounds"`
	GridVisible  bool `yaml:"grid_visible"`
}

// Default returns the museum room at its usual size with overlays off.
func Default() Config {
	m := room.DefaultMaterials()
	return Config{
		Window: WindowConfig{
			Title:     "Museum Imaginarium",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		Room: room.Dimensions{Length: 100, Height: 50, Width: 80},
		Assets: AssetsConfig{
			Dir:            ".",
			WallTexture:    m.Wall,
			FloorTexture:   m.Floor,
			CeilingTexture: m.Ceiling,
			GrassTexture:   m.Grass,
		},
		Player: PlayerConfig{
			Spawn:       [3]float32{-20, 0, 50},
			Speed:       15,
			Radius:      1,
			Sensitivity: 0.003,
		},
	}
}

// Materials returns the room materials named by the asset config.
func (c Config) Materials() room.Materials {
	return room.Materials{
		Wall:    c.Assets.WallTexture,
		Floor:   c.Assets.FloorTexture,
		Ceiling: c.Assets.CeilingTexture,
		Grass:   c.Assets.GrassTexture,
	}
}

// Path returns the config path: the PathEnv variable if set, else DefaultPath.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the YAML file at path over Default(), so keys missing from the file keep their
// defaults. A missing file is not an error. A malformed file returns Default() and the error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Overrides are command-line values layered over the loaded config. Zero values are ignored.
type Overrides struct {
	Length     float32
	Height     float32
	Width      float32
	Fullscreen bool
	AssetDir   string
}

// roomOverrides and windowOverrides share field names with the config sections so copier can
// match them.
type roomOverrides struct {
	Length float32
	Height float32
	Width  float32
}

type windowOverrides struct {
	Fullscreen bool
}

type assetOverrides struct {
	Dir string
}

// Apply copies the non-zero overrides into cfg.
func (o Overrides) Apply(cfg *Config) error {
	opt := copier.Option{IgnoreEmpty: true}
	if err := copier.CopyWithOption(&cfg.Room, roomOverrides{Length: o.Length, Height: o.Height, Width: o.Width}, opt); err != nil {
		return fmt.Errorf("config: room overrides: %w", err)
	}
	if err := copier.CopyWithOption(&cfg.Window, windowOverrides{Fullscreen: o.Fullscreen}, opt); err != nil {
		return fmt.Errorf("config: window overrides: %w", err)
	}
	if err := copier.CopyWithOption(&cfg.Assets, assetOverrides{Dir: o.AssetDir}, opt); err != nil {
		return fmt.Errorf("config: asset overrides: %w", err)
	}
	return nil
}
