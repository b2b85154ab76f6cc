package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/volleyball/components"
	"github.com/lixenwraith/volleyball/constants"
	"github.com/lixenwraith/volleyball/core"
	"github.com/lixenwraith/volleyball/engine"
)

// BounceSystem reflects the ball off the ceiling, the side walls and the paddles
type BounceSystem struct {
	ctx *engine.GameContext
}

// NewBounceSystem creates a new bounce system
func NewBounceSystem(ctx *engine.GameContext) *BounceSystem {
	return &BounceSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *BounceSystem) Priority() int {
	return constants.PriorityBounce
}

// Update resolves at most one arena reflection, then checks each paddle
func (s *BounceSystem) Update(world *engine.World, dt time.Duration) {
	b := &world.Ball

	// Ceiling wins over walls; a ball already moving away is left alone
	switch {
	case b.Y >= constants.ArenaHeight-b.Radius && b.VY > 0:
		b.VY = -b.VY
		s.ctx.PlaySound(core.SoundBounce)
	case b.X <= b.Radius && b.VX < 0:
		b.VX = -b.VX
		s.ctx.PlaySound(core.SoundBounce)
	case b.X >= constants.ArenaWidth-b.Radius && b.VX > 0:
		b.VX = -b.VX
		s.ctx.PlaySound(core.SoundBounce)
	}

	for side := components.SideLeft; side < components.SideCount; side++ {
		paddle := world.Paddle(side)
		if !BallTouchesPaddle(*b, *paddle) || b.VY >= 0 {
			continue
		}
		s.bounceOffPaddle(b, side)
	}
}

// bounceOffPaddle sends the ball back up and towards the opposite half
func (s *BounceSystem) bounceOffPaddle(b *components.BallComponent, side components.Side) {
	b.VY = -b.VY
	speed := math.Abs(b.VX) * engine.RandomRange(s.ctx.Rand, constants.BounceFactorMin, constants.BounceFactorMax)
	if side == components.SideLeft {
		b.VX = speed
	} else {
		b.VX = -speed
	}
	s.ctx.PlaySound(core.SoundBounce)
}

// BallTouchesPaddle tests the ball centre against the paddle box grown by the ball radius
func BallTouchesPaddle(b components.BallComponent, p components.PaddleComponent) bool {
	left, bottom, right, top := p.Bounds()
	return PointInRect(b.X, b.Y, left-b.Radius, bottom-b.Radius, right+b.Radius, top+b.Radius)
}

// PointInRect reports whether (x, y) lies inside the closed rectangle
func PointInRect(x, y, left, bottom, right, top float64) bool {
	return x >= left && x <= right && y >= bottom && y <= top
}
