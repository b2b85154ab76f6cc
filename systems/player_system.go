package systems

import (
	"time"

	"github.com/lixenwraith/volleyball/components"
	"github.com/lixenwraith/volleyball/constants"
	"github.com/lixenwraith/volleyball/engine"
)

// PlayerSystem moves each paddle along its lane from the held keys
type PlayerSystem struct {
	ctx *engine.GameContext
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(ctx *engine.GameContext) *PlayerSystem {
	return &PlayerSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

// Update applies this frame's input to both paddles
func (s *PlayerSystem) Update(world *engine.World, dt time.Duration) {
	for side := components.SideLeft; side < components.SideCount; side++ {
		direction := Direction(
			s.ctx.Held(side.GoLeftAction()),
			s.ctx.Held(side.GoRightAction()),
		)
		MovePaddle(world.Paddle(side), direction, dt.Seconds())
	}
}

// Direction combines the two held keys into -1, 0 or +1
func Direction(left, right bool) float64 {
	d := 0.0
	if left {
		d--
	}
	if right {
		d++
	}
	return d
}

// MovePaddle shifts the paddle and clamps it to its side's range
func MovePaddle(p *components.PaddleComponent, direction, dt float64) {
	p.X += direction * constants.PlayerSpeed * dt
	lo, hi := p.Side.Range()
	p.X = max(lo, min(hi, p.X))
}
