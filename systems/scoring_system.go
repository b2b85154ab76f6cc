package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/volleyball/components"
	"github.com/lixenwraith/volleyball/constants"
	"github.com/lixenwraith/volleyball/core"
	"github.com/lixenwraith/volleyball/engine"
)

// ScoringSystem ends a rally when the ball touches the ground
type ScoringSystem struct {
	ctx *engine.GameContext
}

// NewScoringSystem creates a new scoring system
func NewScoringSystem(ctx *engine.GameContext) *ScoringSystem {
	return &ScoringSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *ScoringSystem) Priority() int {
	return constants.PriorityScoring
}

// Update awards a point to the side opposite the landing half and restarts the ball
func (s *ScoringSystem) Update(world *engine.World, dt time.Duration) {
	b := &world.Ball
	if b.Y >= b.Radius {
		return
	}

	s.ctx.PlaySound(core.SoundScore)

	landed := components.SideRight
	if b.X <= constants.ArenaWidth/2 {
		landed = components.SideLeft
	}
	scorer := landed.Opposite()

	// Restart towards the scorer's half
	b.VX = math.Abs(b.VX)
	if scorer == components.SideLeft {
		b.VX = -b.VX
	}
	world.Score.Increment(scorer)
	b.ResetToCenter()

	s.ctx.Logger.Info("point scored",
		"side", scorer.String(),
		"left", world.Score.Left,
		"right", world.Score.Right,
		"frame", world.FrameNumber(),
	)
}
