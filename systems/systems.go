package systems

import "github.com/lixenwraith/volleyball/engine"

// AddAll registers the frame pipeline on the context's world
// Priorities fix the order: player, ball, bounce, scoring, display
func AddAll(ctx *engine.GameContext) {
	ctx.World.AddSystem(NewPlayerSystem(ctx))
	ctx.World.AddSystem(NewBallSystem(ctx))
	ctx.World.AddSystem(NewBounceSystem(ctx))
	ctx.World.AddSystem(NewScoringSystem(ctx))
	ctx.World.AddSystem(NewScoreDisplaySystem())
}
