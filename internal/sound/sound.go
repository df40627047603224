package sound

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/bwilliford/zenOut/internal/config"
	"github.com/bwilliford/zenOut/internal/log"
)

// Cue names matching the embedded assets and the sounds config map.
const (
	CueChime    = "chime"
	CueHum      = "hum"
	CueAmbience = "ambience"
)

// maxConcurrentOneShots limits simultaneous one-shot playback to prevent
// audio overload from rapid phase transitions.
const maxConcurrentOneShots = 2

// Service creates playback for the session's audio cues.
type Service interface {
	// PlayOnce plays the named cue once, asynchronously. Errors are
	// logged, not returned; unknown or disabled cues are silently ignored.
	PlayOnce(cue string)
	// NewHandle returns a stoppable playback handle for the named cue.
	// Disabled or unknown cues yield a NoopHandle.
	NewHandle(cue string, loop bool) Handle
	// Available reports whether an audio player was detected.
	Available() bool
}

// NoopService is a Service that does nothing. Safe default when audio is
// disabled or unavailable.
type NoopService struct{}

func (NoopService) PlayOnce(string)               {}
func (NoopService) NewHandle(string, bool) Handle { return NoopHandle{} }
func (NoopService) Available() bool               { return false }

// SystemService plays cues via OS-native audio commands. Embedded assets
// are extracted to a per-process temp directory on first use; override
// files from config are played in place.
type SystemService struct {
	events         map[string]config.SoundEventConfig
	audioAvailable bool
	audioCommand   string
	audioArgs      []string
	volumeArgs     func(v float64) []string

	oneShots atomic.Int32

	mu        sync.Mutex
	cacheDir  string
	extracted map[string]string
}

// NewSystemService creates a sound service with the given per-cue
// configuration (nil enables every cue with its embedded default).
func NewSystemService(events map[string]config.SoundEventConfig) *SystemService {
	cmd, args, vol := detectAudioCommand()
	available := cmd != ""

	log.Debug(log.CatSound, "Sound service initialized",
		"audioAvailable", available,
		"audioCommand", cmd,
		"platform", runtime.GOOS,
	)

	return &SystemService{
		events:         events,
		audioAvailable: available,
		audioCommand:   cmd,
		audioArgs:      args,
		volumeArgs:     vol,
		extracted:      make(map[string]string),
	}
}

// Available reports whether an audio player was detected on this platform.
func (s *SystemService) Available() bool {
	return s.audioAvailable
}

// PlayOnce plays the named cue once, asynchronously. Does nothing if the
// cue is disabled, no audio player exists, the asset is unknown, or the
// one-shot concurrency cap is reached.
func (s *SystemService) PlayOnce(cue string) {
	path, ok := s.cuePath(cue)
	if !ok {
		return
	}

	if s.oneShots.Add(1) > maxConcurrentOneShots {
		s.oneShots.Add(-1)
		log.Debug(log.CatSound, "Concurrent one-shot limit reached", "cue", cue)
		return
	}

	go func() {
		defer s.oneShots.Add(-1)
		args := s.buildArgs(path, 1)
		if err := exec.Command(s.audioCommand, args...).Run(); err != nil { //nolint:gosec // audioCommand validated at construction
			log.Debug(log.CatSound, "One-shot playback failed", "cue", cue, "error", err)
		}
	}()
}

// NewHandle returns a playback handle for the named cue. The handle is
// inert until Start is called.
func (s *SystemService) NewHandle(cue string, loop bool) Handle {
	path, ok := s.cuePath(cue)
	if !ok {
		return NoopHandle{}
	}
	return newSystemHandle(s, cue, path, loop)
}

// cuePath resolves a cue to a playable file path, honoring per-cue config:
// disabled cues resolve to nothing, overrides are preferred when they exist
// at call time, and embedded defaults are extracted to a temp file once.
func (s *SystemService) cuePath(cue string) (string, bool) {
	if s.events != nil {
		if ev, exists := s.events[cue]; exists {
			if !ev.Enabled {
				log.Debug(log.CatSound, "Cue disabled by config", "cue", cue)
				return "", false
			}
			if ev.Override != "" {
				if _, err := os.Stat(ev.Override); err == nil {
					return ev.Override, true
				}
				log.Debug(log.CatSound, "Override sound not found, falling back to default", "cue", cue, "path", ev.Override)
			}
		}
	}

	if !s.audioAvailable {
		log.Debug(log.CatSound, "No audio player available", "cue", cue)
		return "", false
	}
	return s.extract(cue)
}

// extract writes the embedded asset for cue to the cache dir, once.
func (s *SystemService) extract(cue string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if path, ok := s.extracted[cue]; ok {
		return path, true
	}

	data, err := soundFiles.ReadFile("sounds/" + cue + ".wav")
	if err != nil {
		log.Debug(log.CatSound, "Unknown cue", "cue", cue, "error", err)
		return "", false
	}

	if s.cacheDir == "" {
		dir, err := os.MkdirTemp("", "zenout-sound-*")
		if err != nil {
			log.Debug(log.CatSound, "Failed to create sound cache dir", "error", err)
			return "", false
		}
		s.cacheDir = dir
	}

	path := filepath.Join(s.cacheDir, cue+".wav")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Debug(log.CatSound, "Failed to extract cue", "cue", cue, "error", err)
		return "", false
	}
	s.extracted[cue] = path
	return path, true
}

// Cleanup removes extracted assets. Call once on shutdown.
func (s *SystemService) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cacheDir != "" {
		if err := os.RemoveAll(s.cacheDir); err != nil {
			log.Debug(log.CatSound, "Failed to remove sound cache dir", "error", err)
		}
		s.cacheDir = ""
		s.extracted = make(map[string]string)
	}
}

// buildArgs constructs player arguments for path at the given volume
// (0..1). Creates a new slice to avoid data races from shared backing
// arrays.
func (s *SystemService) buildArgs(path string, volume float64) []string {
	// Windows PowerShell needs path interpolation into the command
	if runtime.GOOS == "windows" {
		return []string{"-c", fmt.Sprintf("(New-Object System.Media.SoundPlayer '%s').PlaySync()", path)}
	}

	var args []string
	args = append(args, s.audioArgs...)
	if s.volumeArgs != nil && volume < 1 {
		args = append(args, s.volumeArgs(volume)...)
	}
	return append(args, path)
}

// detectAudioCommand returns the audio command, base arguments, and a
// volume-argument builder for the current platform. The builder is nil when
// the player has no volume control. Returns an empty command if no audio
// player is available.
func detectAudioCommand() (string, []string, func(v float64) []string) {
	switch runtime.GOOS {
	case "darwin":
		// macOS: afplay is always available; -v takes 0..1
		if path, err := exec.LookPath("afplay"); err == nil {
			return path, nil, func(v float64) []string {
				return []string{"-v", strconv.FormatFloat(v, 'f', 2, 64)}
			}
		}
	case "linux":
		// Linux: prefer paplay (PulseAudio, volume 0..65536), fall back to aplay (ALSA)
		if path, err := exec.LookPath("paplay"); err == nil {
			return path, nil, func(v float64) []string {
				return []string{fmt.Sprintf("--volume=%d", int(v*65536))}
			}
		}
		if path, err := exec.LookPath("aplay"); err == nil {
			return path, []string{"-q"}, nil // quiet mode, no volume control
		}
	case "windows":
		// Windows: PowerShell with System.Media.SoundPlayer; args are
		// constructed in buildArgs due to path interpolation
		if path, err := exec.LookPath("powershell.exe"); err == nil {
			return path, nil, nil
		}
	}
	return "", nil, nil
}
