package systems

import (
	"testing"

	"github.com/lixenwraith/volleyball/components"
	"github.com/lixenwraith/volleyball/engine"
)

// TestScoreDisplayProjectsCounters verifies labels follow the counters and re-render safely
func TestScoreDisplayProjectsCounters(t *testing.T) {
	w := engine.NewWorld()
	sys := NewScoreDisplaySystem()

	if w.ScoreBoards[components.SideLeft].Text != "0" || w.ScoreBoards[components.SideRight].Text != "0" {
		t.Fatalf("Scoreboards should start at 0")
	}

	w.Score = components.ScoreComponent{Left: 3, Right: 12}
	for i := 0; i < 3; i++ {
		sys.Update(w, 0)
		if got := w.ScoreBoards[components.SideLeft].Text; got != "3" {
			t.Errorf("Pass %d: left label %q, want \"3\"", i, got)
		}
		if got := w.ScoreBoards[components.SideRight].Text; got != "12" {
			t.Errorf("Pass %d: right label %q, want \"12\"", i, got)
		}
	}
}

// TestAddAllOrder verifies the frame pipeline runs in the documented order
func TestAddAllOrder(t *testing.T) {
	ctx, _, _ := engine.NewTestGameContext(nil)
	AddAll(ctx)

	got := ctx.World.Systems()
	if len(got) != 5 {
		t.Fatalf("Expected 5 systems, got %d", len(got))
	}
	if _, ok := got[0].(*PlayerSystem); !ok {
		t.Errorf("First system should be PlayerSystem, got %T", got[0])
	}
	if _, ok := got[1].(*BallSystem); !ok {
		t.Errorf("Second system should be BallSystem, got %T", got[1])
	}
	if _, ok := got[2].(*BounceSystem); !ok {
		t.Errorf("Third system should be BounceSystem, got %T", got[2])
	}
	if _, ok := got[3].(*ScoringSystem); !ok {
		t.Errorf("Fourth system should be ScoringSystem, got %T", got[3])
	}
	if _, ok := got[4].(*ScoreDisplaySystem); !ok {
		t.Errorf("Fifth system should be ScoreDisplaySystem, got %T", got[4])
	}
}
