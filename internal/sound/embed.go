// Package sound plays the session's audio cues. It supports cross-platform
// playback via OS-native audio commands; playback is fire-and-forget and
// every failure is logged, never returned.
package sound

import "embed"

// soundFiles contains the embedded WAV assets: the phase-start chime, the
// per-cycle hum, and the ambience loop.
//
//go:embed sounds/*.wav
var soundFiles embed.FS
