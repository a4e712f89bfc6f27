package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	require.NoError(t, Load(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadSetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# museum\nMUSEUM_TEST_A=\"quoted value\"\nMUSEUM_TEST_B=plain\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("MUSEUM_TEST_A", "")
	t.Setenv("MUSEUM_TEST_B", "from shell")
	os.Unsetenv("MUSEUM_TEST_A")

	require.NoError(t, Load(path))
	require.Equal(t, "quoted value", os.Getenv("MUSEUM_TEST_A"))
	require.Equal(t, "from shell", os.Getenv("MUSEUM_TEST_B"), "process environment wins")
}
