package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/volleyball/components"
	"github.com/lixenwraith/volleyball/constants"
	"github.com/lixenwraith/volleyball/core"
	"github.com/lixenwraith/volleyball/engine"
)

// TestDirection verifies held keys combine and cancel
func TestDirection(t *testing.T) {
	tests := []struct {
		left, right bool
		want        float64
	}{
		{false, false, 0},
		{true, false, -1},
		{false, true, 1},
		{true, true, 0},
	}

	for _, tt := range tests {
		if got := Direction(tt.left, tt.right); got != tt.want {
			t.Errorf("Direction(%v, %v) = %v, want %v", tt.left, tt.right, got, tt.want)
		}
	}
}

// TestSideRange verifies each side owns its half inset by half a paddle
func TestSideRange(t *testing.T) {
	lo, hi := components.SideLeft.Range()
	if lo != 11 || hi != 389 {
		t.Errorf("Left range expected [11, 389], got [%v, %v]", lo, hi)
	}
	lo, hi = components.SideRight.Range()
	if lo != 411 || hi != 789 {
		t.Errorf("Right range expected [411, 789], got [%v, %v]", lo, hi)
	}
}

// TestMovePaddleClamps verifies any offset lands inside the side's range
func TestMovePaddleClamps(t *testing.T) {
	offsets := []float64{-1e6, -500, -12.5, 0, 3, 250, 1e6}

	for _, side := range []components.Side{components.SideLeft, components.SideRight} {
		lo, hi := side.Range()
		for _, offset := range offsets {
			p := components.NewPaddle(side)
			// Offset is direction*speed*dt, feed it through as a one second frame
			MovePaddle(&p, offset/constants.PlayerSpeed, 1)
			if p.X < lo || p.X > hi {
				t.Errorf("%s paddle with offset %v escaped range: x=%v not in [%v, %v]", side, offset, p.X, lo, hi)
			}
		}
	}
}

// TestMovePaddleSpeed verifies unclamped motion is direction*speed*dt
func TestMovePaddleSpeed(t *testing.T) {
	p := components.PaddleComponent{Side: components.SideLeft, X: 200, Y: constants.PlayerHeight / 2}

	MovePaddle(&p, 1, 0.5)
	if p.X != 230 {
		t.Errorf("Expected x 230 after half a second right, got %v", p.X)
	}

	MovePaddle(&p, -1, 0.25)
	if p.X != 215 {
		t.Errorf("Expected x 215 after quarter second left, got %v", p.X)
	}

	MovePaddle(&p, 1, 0)
	if p.X != 215 {
		t.Errorf("Zero delta moved the paddle to %v", p.X)
	}
}

// TestPlayerSystemBindings verifies each side reads only its own keys
func TestPlayerSystemBindings(t *testing.T) {
	ctx, _, _ := engine.NewTestGameContext(nil)
	ctx.Input = engine.StaticInput{
		core.ActionLeftPaddleRight: true,
		core.ActionRightPaddleLeft: true,
	}
	sys := NewPlayerSystem(ctx)

	sys.Update(ctx.World, 500*time.Millisecond)

	if got := ctx.World.Paddle(components.SideLeft).X; got != 41 {
		t.Errorf("Left paddle expected at 41, got %v", got)
	}
	if got := ctx.World.Paddle(components.SideRight).X; got != 759 {
		t.Errorf("Right paddle expected at 759, got %v", got)
	}
}

// TestPlayerSystemBothKeysCancel verifies opposing keys hold the paddle still
func TestPlayerSystemBothKeysCancel(t *testing.T) {
	ctx, _, _ := engine.NewTestGameContext(nil)
	ctx.World.Paddle(components.SideLeft).X = 100
	ctx.Input = engine.StaticInput{
		core.ActionLeftPaddleLeft:  true,
		core.ActionLeftPaddleRight: true,
	}
	sys := NewPlayerSystem(ctx)

	sys.Update(ctx.World, time.Second)

	if got := ctx.World.Paddle(components.SideLeft).X; got != 100 {
		t.Errorf("Expected paddle to stay at 100, got %v", got)
	}
}

// TestPaddleAtBoundStaysClamped runs full frames with only "move left" held at the left bound
func TestPaddleAtBoundStaysClamped(t *testing.T) {
	ctx, clock, _ := engine.NewTestGameContext(nil)
	AddAll(ctx)
	ctx.Input = engine.StaticInput{core.ActionLeftPaddleLeft: true}

	lo, _ := components.SideLeft.Range()
	paddle := ctx.World.Paddle(components.SideLeft)
	if paddle.X != lo {
		t.Fatalf("Left paddle should start at its lower bound %v, got %v", lo, paddle.X)
	}

	for i := 0; i < 120; i++ {
		clock.Advance(frameStep)
		ctx.Step()
		if paddle.X != lo {
			t.Fatalf("Frame %d: paddle moved to %v", i, paddle.X)
		}
	}
}
