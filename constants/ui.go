package constants

import "time"

// Window title shown on the status line
const WindowTitle = "Volleyball"

// Sprite glyphs
const (
	GlyphBall        = '●'
	GlyphLeftPlayer  = '▓'
	GlyphRightPlayer = '▒'
)

// Input Timing
const (
	// KeyRepeatDelay is the longest common terminal auto-repeat initial delay
	KeyRepeatDelay = 600 * time.Millisecond

	// DefaultKeyHold is how long a key counts as held after its last press or repeat
	// Terminals report no key release, so held state decays on a timer
	// It must outlast KeyRepeatDelay or a held key stutters between the first press and the repeats,
	// the cost is that a released paddle coasts for up to this long
	DefaultKeyHold = KeyRepeatDelay + 50*time.Millisecond
)
