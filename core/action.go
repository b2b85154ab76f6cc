package core

// Action is a logical input produced by the key table and consumed by systems
type Action int

const (
	ActionNone Action = iota
	ActionLeftPaddleLeft
	ActionLeftPaddleRight
	ActionRightPaddleLeft
	ActionRightPaddleRight
	ActionToggleMute
	ActionQuit
	ActionCount
)

// IsHoldable reports whether the action is tracked as a held key
// Quit and mute are one-shot actions handled by the frame loop
func (a Action) IsHoldable() bool {
	return a >= ActionLeftPaddleLeft && a <= ActionRightPaddleRight
}

var actionNames = [ActionCount]string{
	ActionNone:             "none",
	ActionLeftPaddleLeft:   "left_paddle_left",
	ActionLeftPaddleRight:  "left_paddle_right",
	ActionRightPaddleLeft:  "right_paddle_left",
	ActionRightPaddleRight: "right_paddle_right",
	ActionToggleMute:       "toggle_mute",
	ActionQuit:             "quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
