package scene

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

func keys(held ...int32) func(int32) bool {
	return func(k int32) bool {
		for _, h := range held {
			if h == k {
				return true
			}
		}
		return false
	}
}

func TestMoveInput(t *testing.T) {
	f, r := moveInput(keys())
	require.Zero(t, f)
	require.Zero(t, r)

	f, r = moveInput(keys(rl.KeyW, rl.KeyD))
	require.Equal(t, float32(1), f)
	require.Equal(t, float32(1), r)

	f, r = moveInput(keys(rl.KeyDown, rl.KeyA))
	require.Equal(t, float32(-1), f)
	require.Equal(t, float32(-1), r)

	f, _ = moveInput(keys(rl.KeyW, rl.KeyS))
	require.Zero(t, f, "opposite keys cancel")
}

func TestFindSkybox(t *testing.T) {
	dir := t.TempDir()
	require.Empty(t, FindSkybox(dir, ""))

	jpg := filepath.Join(dir, "assets", "skybox", "skybox.jpg")
	require.NoError(t, os.MkdirAll(filepath.Dir(jpg), 0755))
	require.NoError(t, os.WriteFile(jpg, []byte("x"), 0644))
	require.Equal(t, jpg, FindSkybox(dir, ""))

	require.Empty(t, FindSkybox(dir, "sky/missing.png"), "a configured path does not fall back to the defaults")

	custom := filepath.Join(dir, "pano.png")
	require.NoError(t, os.WriteFile(custom, []byte("x"), 0644))
	require.Equal(t, custom, FindSkybox(dir, "pano.png"))
	require.Equal(t, custom, FindSkybox("elsewhere", custom))
}
