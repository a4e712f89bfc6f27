package debug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"museum/internal/config"
)

func TestLinesHiddenByDefault(t *testing.T) {
	d := New()
	require.Empty(t, d.Lines(60))
}

func TestLinesRefreshInterval(t *testing.T) {
	d := New()
	d.SetShowFPS(true)

	require.Equal(t, []string{"FPS: 60"}, d.Lines(60))
	for i := 2; i < updateInterval; i++ {
		require.Equal(t, []string{"FPS: 60"}, d.Lines(30), "frame %d reuses the cached text", i)
	}
	require.Equal(t, []string{"FPS: 30"}, d.Lines(30))
}

func TestLinesMemAlloc(t *testing.T) {
	d := New()
	d.SetShowFPS(true)
	d.SetShowMemAlloc(true)

	lines := d.Lines(60)
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[1], "Mem: "))
	require.True(t, strings.HasSuffix(lines[1], " MiB"))
}

func TestFromConfig(t *testing.T) {
	d := FromConfig(config.DebugConfig{ShowBounds: true, ShowMemAlloc: true})
	require.True(t, d.ShowBounds)
	require.True(t, d.ShowMemAlloc)
	require.False(t, d.ShowFPS)

	d.SetShowBounds(false)
	require.False(t, d.ShowBounds)
}
