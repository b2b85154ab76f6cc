package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/volleyball/components"
	"github.com/lixenwraith/volleyball/constants"
	"github.com/lixenwraith/volleyball/core"
	"github.com/lixenwraith/volleyball/engine"
)

// frameStep is one ~60 FPS frame
const frameStep = 16 * time.Millisecond

// TestScoringSides verifies the side opposite the landing half gets the point
func TestScoringSides(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		vx        float64
		wantLeft  int
		wantRight int
		wantVX    float64
	}{
		{"Left extreme", 0, -30, 0, 1, 30},
		{"Left half moving right", 200, 30, 0, 1, 30},
		{"Midline counts as left half", constants.ArenaWidth / 2, -12, 0, 1, 12},
		{"Right extreme", constants.ArenaWidth, 30, 1, 0, -30},
		{"Right half moving left", 600, -25, 1, 0, -25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, audio := engine.NewTestGameContext(nil)
			sys := NewScoringSystem(ctx)
			ctx.World.Ball = components.BallComponent{X: tt.x, Y: 1, VX: tt.vx, VY: -50, Radius: constants.BallRadius}

			sys.Update(ctx.World, 0)

			w := ctx.World
			if w.Score.Left != tt.wantLeft || w.Score.Right != tt.wantRight {
				t.Errorf("Expected score %d-%d, got %d-%d", tt.wantLeft, tt.wantRight, w.Score.Left, w.Score.Right)
			}
			if w.Ball.X != constants.ArenaWidth/2 || w.Ball.Y != constants.ArenaHeight/2 {
				t.Errorf("Ball should reset to centre, got (%v, %v)", w.Ball.X, w.Ball.Y)
			}
			if w.Ball.VY != 0 {
				t.Errorf("Ball should restart in free fall, got vy %v", w.Ball.VY)
			}
			if w.Ball.VX != tt.wantVX {
				t.Errorf("Expected vx %v, got %v", tt.wantVX, w.Ball.VX)
			}
			if got := audio.Count(core.SoundScore); got != 1 {
				t.Errorf("Expected one score cue, got %d", got)
			}
		})
	}
}

// TestNoScoreAboveGround verifies a ball at or above its radius is still in play
func TestNoScoreAboveGround(t *testing.T) {
	for _, y := range []float64{constants.BallRadius, 10, 300} {
		ctx, _, audio := engine.NewTestGameContext(nil)
		sys := NewScoringSystem(ctx)
		ctx.World.Ball = components.BallComponent{X: 100, Y: y, VX: 30, VY: -5, Radius: constants.BallRadius}

		sys.Update(ctx.World, 0)

		if ctx.World.Score != (components.ScoreComponent{}) {
			t.Errorf("y=%v: unexpected score %+v", y, ctx.World.Score)
		}
		if ctx.World.Ball.Y != y {
			t.Errorf("y=%v: ball moved to %v", y, ctx.World.Ball.Y)
		}
		if len(audio.Played) != 0 {
			t.Errorf("y=%v: unexpected cues %v", y, audio.Played)
		}
	}
}

// TestRallyEndsWithSingleScore simulates a full free fall from the launch state
func TestRallyEndsWithSingleScore(t *testing.T) {
	ctx, clock, audio := engine.NewTestGameContext(nil)
	AddAll(ctx)

	w := ctx.World
	if w.Ball.VX != 30 || w.Ball.VY != 0 {
		t.Fatalf("Unexpected launch velocity (%v, %v)", w.Ball.VX, w.Ball.VY)
	}

	scored := false
	for i := 0; i < 2000 && !scored; i++ {
		clock.Advance(frameStep)
		ctx.Step()
		scored = w.Score.Left+w.Score.Right > 0
	}

	if !scored {
		t.Fatalf("Ball never reached the ground")
	}
	// Launched rightwards from the centre, the ball lands in the right half
	if w.Score.Left != 1 || w.Score.Right != 0 {
		t.Errorf("Expected score 1-0 for left, got %d-%d", w.Score.Left, w.Score.Right)
	}
	if w.Ball.X != constants.ArenaWidth/2 || w.Ball.Y != constants.ArenaHeight/2 || w.Ball.VY != 0 {
		t.Errorf("Ball should reappear at centre in free fall, got %+v", w.Ball)
	}
	if w.Ball.VX != -30 {
		t.Errorf("Ball should head back towards the left, got vx %v", w.Ball.VX)
	}
	if got := audio.Count(core.SoundScore); got != 1 {
		t.Errorf("Expected one score cue, got %d", got)
	}
	if w.ScoreBoards[components.SideLeft].Text != "1" || w.ScoreBoards[components.SideRight].Text != "0" {
		t.Errorf("Scoreboards not refreshed: %q %q", w.ScoreBoards[components.SideLeft].Text, w.ScoreBoards[components.SideRight].Text)
	}
}
