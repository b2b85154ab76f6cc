package components

import "github.com/lixenwraith/volleyball/constants"

// PaddleComponent is a player's paddle, centred at (X, Y)
// Y never changes after creation
type PaddleComponent struct {
	Side Side
	X, Y float64
}

// NewPaddle creates a paddle resting on the ground at its side's outer edge
func NewPaddle(side Side) PaddleComponent {
	x := constants.PlayerWidth / 2
	if side == SideRight {
		x = constants.ArenaWidth - constants.PlayerWidth/2
	}
	return PaddleComponent{
		Side: side,
		X:    x,
		Y:    constants.PlayerHeight / 2,
	}
}

// Bounds returns the paddle box as left, bottom, right, top
func (p PaddleComponent) Bounds() (left, bottom, right, top float64) {
	hw := constants.PlayerWidth / 2
	hh := constants.PlayerHeight / 2
	return p.X - hw, p.Y - hh, p.X + hw, p.Y + hh
}
