// Package config loads and writes the zenout YAML configuration.
// Config is searched project-local first (.zenout/config.yaml), then in
// the user config directory (~/.config/zenout/config.yaml). Missing files
// are not an error: defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default session length presets, in minutes.
var defaultLengths = []int{2, 5, 10}

// defaultCueStartDelay is the delay, in seconds, between entering a hum
// phase and the first hum firing. It aligns the hum with the first exhale
// of the phase.
const defaultCueStartDelay = 4

// SessionConfig controls session length presets and cue timing.
type SessionConfig struct {
	// LengthsMinutes are the session lengths offered on the start screen.
	LengthsMinutes []int `mapstructure:"lengths_minutes"`
	// CueStartDelaySeconds delays the first hum of phases 2-5 after the
	// phase starts. Default 4, aligning the hum with the first exhale.
	CueStartDelaySeconds int `mapstructure:"cue_start_delay_seconds"`
}

// AmbienceConfig controls the looping background audio.
type AmbienceConfig struct {
	// Enabled sets the initial ambience state; the player can still
	// toggle it during a session.
	Enabled bool `mapstructure:"enabled"`
}

// SoundEventConfig configures a single audio cue.
type SoundEventConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Override plays the given file instead of the embedded default.
	Override string `mapstructure:"override"`
}

// ThemeConfig selects a color preset.
type ThemeConfig struct {
	Preset string `mapstructure:"preset"`
}

// Config is the full application configuration.
type Config struct {
	Session  SessionConfig               `mapstructure:"session"`
	Ambience AmbienceConfig              `mapstructure:"ambience"`
	Sounds   map[string]SoundEventConfig `mapstructure:"sounds"`
	Theme    ThemeConfig                 `mapstructure:"theme"`
	Debug    bool                        `mapstructure:"debug"`

	// path is where the config was read from, empty when defaults only.
	path string
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Session: SessionConfig{
			LengthsMinutes:       append([]int(nil), defaultLengths...),
			CueStartDelaySeconds: defaultCueStartDelay,
		},
		Ambience: AmbienceConfig{Enabled: true},
		Sounds: map[string]SoundEventConfig{
			"chime":    {Enabled: true},
			"hum":      {Enabled: true},
			"ambience": {Enabled: true},
		},
		Theme: ThemeConfig{Preset: "default"},
	}
}

// Load reads configuration from explicitPath when given, otherwise from the
// standard search locations. A missing file yields the defaults.
func Load(explicitPath string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".zenout")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "zenout"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitPath == "" && errors.As(err, &notFound) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.path = v.ConfigFileUsed()

	if len(cfg.Session.LengthsMinutes) == 0 {
		cfg.Session.LengthsMinutes = append([]int(nil), defaultLengths...)
	}
	if cfg.Session.CueStartDelaySeconds < 0 {
		return Config{}, fmt.Errorf("config: cue_start_delay_seconds must not be negative, got %d", cfg.Session.CueStartDelaySeconds)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("session.lengths_minutes", defaultLengths)
	v.SetDefault("session.cue_start_delay_seconds", defaultCueStartDelay)
	v.SetDefault("ambience.enabled", true)
	v.SetDefault("sounds.chime.enabled", true)
	v.SetDefault("sounds.hum.enabled", true)
	v.SetDefault("sounds.ambience.enabled", true)
	v.SetDefault("theme.preset", "default")
	v.SetDefault("debug", false)
}

// Path returns the file the config was loaded from, or empty when running
// on defaults.
func (c Config) Path() string { return c.path }

// CueStartDelay returns the hum start delay as a duration.
func (c Config) CueStartDelay() time.Duration {
	return time.Duration(c.Session.CueStartDelaySeconds) * time.Second
}

// SoundEvent returns the config for the named cue. Cues absent from the
// map are enabled with no override.
func (c Config) SoundEvent(name string) SoundEventConfig {
	if c.Sounds == nil {
		return SoundEventConfig{Enabled: true}
	}
	ev, ok := c.Sounds[name]
	if !ok {
		return SoundEventConfig{Enabled: true}
	}
	return ev
}

// LogPath returns the log file location. Project-local configs keep the
// log alongside them; otherwise it lives in the user config directory.
func LogPath(configPath string) string {
	home, _ := os.UserHomeDir()
	fallback := filepath.Join(home, ".config", "zenout", "zenout.log")
	if configPath == "" {
		return fallback
	}

	clean := filepath.Clean(configPath)
	suffix := filepath.Join(".zenout", "config.yaml")
	if strings.HasSuffix(clean, suffix) {
		return filepath.Join(filepath.Dir(clean), "zenout.log")
	}
	return fallback
}
