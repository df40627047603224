package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bwilliford/zenOut/internal/config"
)

// TestRunInit_CreatesConfig verifies `zenout init` writes a loadable config
// in the working directory.
func TestRunInit_CreatesConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, runInit(initCmd, nil))

	path := filepath.Join(".zenout", "config.yaml")
	_, err := os.Stat(path)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, []int{2, 5, 10}, cfg.Session.LengthsMinutes)
}

// TestRunInit_FailsWhenConfigExists verifies init never overwrites an
// existing config.
func TestRunInit_FailsWhenConfigExists(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, runInit(initCmd, nil))

	err := runInit(initCmd, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}

// TestRootCmd_HasSubcommands verifies command registration.
func TestRootCmd_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	require.True(t, names["init"])
	require.True(t, names["themes"])
	require.True(t, names["sounds"])
}
