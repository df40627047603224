package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ".zenout", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

// TestLoad_Defaults verifies the default configuration values.
func TestLoad_Defaults(t *testing.T) {
	cfg := Default()

	require.Equal(t, []int{2, 5, 10}, cfg.Session.LengthsMinutes)
	require.Equal(t, 4*time.Second, cfg.CueStartDelay())
	require.True(t, cfg.Ambience.Enabled)
	require.True(t, cfg.SoundEvent("chime").Enabled)
	require.True(t, cfg.SoundEvent("hum").Enabled)
	require.Equal(t, "default", cfg.Theme.Preset)
	require.False(t, cfg.Debug)
}

// TestLoad_ExplicitFile verifies loading from an explicit path and that
// file values override defaults.
func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, `
session:
  lengths_minutes: [1, 3]
  cue_start_delay_seconds: 0
ambience:
  enabled: false
sounds:
  hum:
    enabled: false
debug: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, []int{1, 3}, cfg.Session.LengthsMinutes)
	require.Equal(t, time.Duration(0), cfg.CueStartDelay())
	require.False(t, cfg.Ambience.Enabled)
	require.False(t, cfg.SoundEvent("hum").Enabled)
	require.True(t, cfg.Debug)
	require.Equal(t, path, cfg.Path())
}

// TestLoad_SoundOverridePath verifies override sound files are carried
// through.
func TestLoad_SoundOverridePath(t *testing.T) {
	path := writeConfig(t, `
sounds:
  chime:
    enabled: true
    override: /tmp/bell.wav
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/bell.wav", cfg.SoundEvent("chime").Override)
}

// TestLoad_UnknownSoundEventDefaultsEnabled verifies cues missing from the
// sounds map are enabled with no override.
func TestLoad_UnknownSoundEventDefaultsEnabled(t *testing.T) {
	cfg := Default()
	ev := cfg.SoundEvent("does-not-exist")
	require.True(t, ev.Enabled)
	require.Empty(t, ev.Override)
}

// TestLoad_NegativeCueDelayRejected verifies validation of the cue start
// delay.
func TestLoad_NegativeCueDelayRejected(t *testing.T) {
	path := writeConfig(t, `
session:
  cue_start_delay_seconds: -1
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cue_start_delay_seconds")
}

// TestLoad_MissingExplicitFileFails verifies an explicit path that does not
// exist is an error rather than silently using defaults.
func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

// TestWriteDefaultConfig_CreatesFile verifies init writes a loadable config.
func TestWriteDefaultConfig_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".zenout", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []int{2, 5, 10}, cfg.Session.LengthsMinutes)
	require.Equal(t, 4, cfg.Session.CueStartDelaySeconds)
	require.True(t, cfg.Ambience.Enabled)
}

// TestWriteDefaultConfig_RefusesOverwrite verifies an existing config is
// never clobbered.
func TestWriteDefaultConfig_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n"), 0o644))

	err := WriteDefaultConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}

// TestLogPath verifies project-local configs keep the log alongside them
// and everything else falls back to the user config directory.
func TestLogPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	fallback := filepath.Join(home, ".config", "zenout", "zenout.log")

	tests := []struct {
		name       string
		configPath string
		want       string
	}{
		{"empty path falls back", "", fallback},
		{"project-local config", "/work/proj/.zenout/config.yaml", "/work/proj/.zenout/zenout.log"},
		{"global config falls back", filepath.Join(home, ".config", "zenout", "config.yaml"), fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, LogPath(tt.configPath))
		})
	}
}
