package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultConfigYAML is the commented template written by `zenout init`.
const defaultConfigYAML = `# zenout configuration
session:
  # Session lengths offered on the start screen, in minutes.
  lengths_minutes: [2, 5, 10]
  # Delay before the first hum of phases 2-5, in seconds.
  # 4 aligns the hum with the first exhale of the phase; 0 starts it
  # with the phase itself.
  cue_start_delay_seconds: 4

ambience:
  # Whether the background loop starts unmuted. Toggle with m in a session.
  enabled: true

sounds:
  chime:
    enabled: true
  hum:
    enabled: true
    # override: /path/to/custom.wav
  ambience:
    enabled: true

theme:
  preset: default

# Write debug-level detail to the log file.
debug: false
`

// WriteDefaultConfig creates a commented default config file at path,
// creating parent directories as needed. It refuses to overwrite an
// existing file.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
