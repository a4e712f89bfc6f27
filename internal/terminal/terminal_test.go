package terminal

import (
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"museum/internal/commands"
	"museum/internal/logger"
)

func TestSubmitRunsCommands(t *testing.T) {
	log := logger.NewAt("")
	reg := commands.NewRegistry()
	ran := 0
	reg.Register("ping", flag.NewFlagSet("ping", flag.ContinueOnError), func() error {
		ran++
		return nil
	})
	term := New(log, reg)

	term.Submit("cmd ping")
	term.Submit("hello")
	term.Submit("cmd pong")
	term.Submit("")

	require.Equal(t, 1, ran)
	lines := log.Lines()
	require.Len(t, lines, 4)
	require.True(t, strings.HasSuffix(lines[0], "> cmd ping"))
	require.True(t, strings.HasSuffix(lines[1], "> hello"))
	require.True(t, strings.HasSuffix(lines[2], "> cmd pong"))
	require.True(t, strings.HasSuffix(lines[3], "unknown command: pong"))
	require.False(t, term.IsOpen())
}

func TestVisibleLines(t *testing.T) {
	var lines []string
	for i := 0; i < maxLinesOnScreen+3; i++ {
		lines = append(lines, "x")
	}
	lines = append(lines, strings.Repeat("y", maxLineLen+10))

	got := visibleLines(lines)
	require.Len(t, got, maxLinesOnScreen)
	last := got[len(got)-1]
	require.Len(t, last, maxLineLen)
	require.True(t, strings.HasSuffix(last, "..."))
}
