package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"museum/internal/room"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "museum.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeFile(t, `
room:
  length: 120
debug:
  show_fps: true
assets:
  grass:
    texture: textures/lawn.png
    repeat: 8
player:
  spawn: [1, 2, 3]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, room.Dimensions{Length: 120, Height: 50, Width: 80}, cfg.Room)
	require.True(t, cfg.Debug.ShowFPS)
	require.False(t, cfg.Debug.ShowBounds)
	require.Equal(t, "textures/lawn.png", cfg.Assets.GrassTexture.Texture)
	require.Equal(t, float32(8), cfg.Assets.GrassTexture.Repeat)
	require.Equal(t, Default().Assets.WallTexture, cfg.Assets.WallTexture)
	require.Equal(t, [3]float32{1, 2, 3}, cfg.Player.Spawn)
	require.Equal(t, "Museum Imaginarium", cfg.Window.Title)
}

func TestLoadMalformed(t *testing.T) {
	cfg, err := Load(writeFile(t, "room: [this is: not a map"))
	require.Error(t, err)
	require.Equal(t, Default(), cfg)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "museum.yaml")
	want := Default()
	want.Room.Width = 64
	want.Debug.GridVisible = true
	want.Assets.Skybox = "assets/skybox/skybox.png"

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestOverridesIgnoreZeroValues(t *testing.T) {
	cfg := Default()
	cfg.Window.Fullscreen = true

	require.NoError(t, Overrides{Width: 90, AssetDir: "/srv/museum"}.Apply(&cfg))

	require.Equal(t, room.Dimensions{Length: 100, Height: 50, Width: 90}, cfg.Room)
	require.True(t, cfg.Window.Fullscreen, "false flag does not clear the file setting")
	require.Equal(t, "/srv/museum", cfg.Assets.Dir)
	require.Equal(t, "Museum Imaginarium", cfg.Window.Title)
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(PathEnv, "")
	require.Equal(t, DefaultPath, Path())

	t.Setenv(PathEnv, "/etc/museum.yaml")
	require.Equal(t, "/etc/museum.yaml", Path())
}

func TestMaterials(t *testing.T) {
	cfg := Default()
	m := cfg.Materials()

	require.Equal(t, room.DefaultMaterials(), m)
}
