// Package session implements the guided session core: the fixed phase
// sequence, the wall-clock session clock that advances phases, and the
// breathing-cycle state derived from elapsed time.
package session

// Phase is one named step of the fixed session sequence.
type Phase struct {
	Key          string
	Name         string
	Description  string
	Illustration string // optional glyph shown next to the description
}

// Phases is the ordered session sequence. It is fixed at five entries and
// must not be mutated at runtime.
var Phases = []Phase{
	{
		Key:          "breathing",
		Name:         "Deep Breathing",
		Description:  "Breathe in slowly through your nose, then release the breath gently through your mouth. Follow the circle.",
		Illustration: "○",
	},
	{
		Key:          "humming",
		Name:         "Humming",
		Description:  "Keep the same rhythm, and hum softly on every exhale. Let the vibration settle into your chest.",
		Illustration: "♪",
	},
	{
		Key:          "ears",
		Name:         "Ear Massage",
		Description:  "Using your thumbs and index fingers, massage the outer edge of each ear from top to lobe.",
		Illustration: "☉",
	},
	{
		Key:          "neck",
		Name:         "Neck Massage",
		Description:  "Drop your shoulders. With both hands, knead the muscles at the base of your neck in slow circles.",
		Illustration: "≈",
	},
	{
		Key:          "eyes",
		Name:         "Eye Massage",
		Description:  "Close your eyes. With light pressure, trace small circles over your brow and temples.",
		Illustration: "◡",
	},
}

// HumPhase reports whether the phase at idx carries the per-cycle hum cue.
// The first phase is silent breathing; every later phase hums on the exhale.
func HumPhase(idx int) bool {
	return idx > 0
}
