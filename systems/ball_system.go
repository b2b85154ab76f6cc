package systems

import (
	"time"

	"github.com/lixenwraith/volleyball/components"
	"github.com/lixenwraith/volleyball/constants"
	"github.com/lixenwraith/volleyball/engine"
)

// BallSystem integrates gravity into the ball's flight
type BallSystem struct {
	ctx     *engine.GameContext
	gravity float64
}

// NewBallSystem creates a ball system using the arena gravity
func NewBallSystem(ctx *engine.GameContext) *BallSystem {
	return &BallSystem{
		ctx:     ctx,
		gravity: constants.GravityAcceleration,
	}
}

// Priority returns the system's priority
func (s *BallSystem) Priority() int {
	return constants.PriorityBall
}

// Update advances the ball by one frame
func (s *BallSystem) Update(world *engine.World, dt time.Duration) {
	IntegrateBall(&world.Ball, dt.Seconds(), s.gravity)
}

// IntegrateBall advances the ball by dt seconds under constant acceleration g
// Position uses the velocity at the middle of the step, then velocity catches up
func IntegrateBall(b *components.BallComponent, dt, g float64) {
	b.X += b.VX * dt
	b.Y += (b.VY + dt*g/2) * dt
	b.VY += g * dt
}
