package components

import (
	"github.com/lixenwraith/volleyball/constants"
	"github.com/lixenwraith/volleyball/core"
)

// Side identifies which half of the arena a player occupies
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideCount
)

// sideBindings maps each side to its (move left, move right) actions
var sideBindings = [SideCount][2]core.Action{
	SideLeft:  {core.ActionLeftPaddleLeft, core.ActionLeftPaddleRight},
	SideRight: {core.ActionRightPaddleLeft, core.ActionRightPaddleRight},
}

// GoLeftAction returns the held action that moves this side's paddle left
func (s Side) GoLeftAction() core.Action {
	return sideBindings[s][0]
}

// GoRightAction returns the held action that moves this side's paddle right
func (s Side) GoRightAction() core.Action {
	return sideBindings[s][1]
}

// Range returns the inclusive [lower, upper] x bounds of the paddle centre
// Each side owns its half of the arena, inset by half a paddle width at both ends
func (s Side) Range() (float64, float64) {
	half := constants.PlayerWidth / 2
	mid := constants.ArenaWidth / 2
	switch s {
	case SideLeft:
		return half, mid - half
	default:
		return mid + half, constants.ArenaWidth - half
	}
}

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}
