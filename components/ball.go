package components

import "github.com/lixenwraith/volleyball/constants"

// BallComponent is the single ball in play
// Position is the centre in arena units, y grows upwards
type BallComponent struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// NewBall creates a ball at the arena centre with the launch velocity
func NewBall() BallComponent {
	return BallComponent{
		X:      constants.ArenaWidth / 2,
		Y:      constants.ArenaHeight / 2,
		VX:     constants.BallVelocityX,
		VY:     constants.BallVelocityY,
		Radius: constants.BallRadius,
	}
}

// ResetToCenter places the ball at the arena centre in free fall
// Horizontal velocity is left to the caller
func (b *BallComponent) ResetToCenter() {
	b.X = constants.ArenaWidth / 2
	b.Y = constants.ArenaHeight / 2
	b.VY = 0
}
