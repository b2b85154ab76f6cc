package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for sprites and UI
var (
	RgbBackground   = tcell.NewRGBColor(0, 0, 0)       // Black arena
	RgbBall         = tcell.NewRGBColor(255, 255, 255) // White ball
	RgbLeftPlayer   = tcell.NewRGBColor(255, 165, 0)   // Orange cat
	RgbRightPlayer  = tcell.NewRGBColor(100, 150, 255) // Blue cat
	RgbScore        = tcell.NewRGBColor(255, 255, 255) // White score text
	RgbStatusBar    = tcell.NewRGBColor(180, 180, 180) // Gray status text
	RgbStatusMuted  = tcell.NewRGBColor(255, 80, 80)   // Red mute marker
	RgbStatusActive = tcell.NewRGBColor(0, 200, 0)     // Green sound marker
)
