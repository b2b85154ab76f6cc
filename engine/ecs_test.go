package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/volleyball/components"
	"github.com/lixenwraith/volleyball/constants"
)

// recordingSystem appends its name to a shared log on every update
type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	lastDt   time.Duration
}

func (s *recordingSystem) Update(world *World, dt time.Duration) {
	*s.log = append(*s.log, s.name)
	s.lastDt = dt
}

func (s *recordingSystem) Priority() int { return s.priority }

// TestNewWorldEntities verifies the fixed entity set and its starting placement
func TestNewWorldEntities(t *testing.T) {
	w := NewWorld()

	if w.Ball.X != constants.ArenaWidth/2 || w.Ball.Y != constants.ArenaHeight/2 {
		t.Errorf("Ball should start at centre, got (%v, %v)", w.Ball.X, w.Ball.Y)
	}
	if w.Ball.VX != constants.BallVelocityX || w.Ball.VY != constants.BallVelocityY {
		t.Errorf("Unexpected launch velocity (%v, %v)", w.Ball.VX, w.Ball.VY)
	}
	if w.Ball.Radius != constants.BallRadius {
		t.Errorf("Expected radius %v, got %v", constants.BallRadius, w.Ball.Radius)
	}

	left := w.Paddle(components.SideLeft)
	right := w.Paddle(components.SideRight)
	if left.Side != components.SideLeft || right.Side != components.SideRight {
		t.Fatalf("Paddles stored under the wrong side")
	}
	if left.X != constants.PlayerWidth/2 || right.X != constants.ArenaWidth-constants.PlayerWidth/2 {
		t.Errorf("Unexpected paddle x: left=%v right=%v", left.X, right.X)
	}
	if left.Y != constants.PlayerHeight/2 || right.Y != constants.PlayerHeight/2 {
		t.Errorf("Paddles should rest on the ground, got y=%v and y=%v", left.Y, right.Y)
	}

	if w.Score != (components.ScoreComponent{}) {
		t.Errorf("Score should start at zero, got %+v", w.Score)
	}
	if w.ScoreBoards[components.SideLeft].X >= w.ScoreBoards[components.SideRight].X {
		t.Errorf("Left scoreboard should sit left of the right one")
	}
}

// TestPaddleReturnsStoredEntity verifies Paddle exposes the world's own record
func TestPaddleReturnsStoredEntity(t *testing.T) {
	w := NewWorld()
	w.Paddle(components.SideRight).X = 500
	if w.Paddles[components.SideRight].X != 500 {
		t.Errorf("Paddle should return a pointer into the world")
	}
}

// TestAddSystemSortsByPriority verifies systems run lowest priority first
func TestAddSystemSortsByPriority(t *testing.T) {
	w := NewWorld()
	var log []string

	w.AddSystem(&recordingSystem{name: "display", priority: 50, log: &log})
	w.AddSystem(&recordingSystem{name: "player", priority: 10, log: &log})
	w.AddSystem(&recordingSystem{name: "bounce", priority: 30, log: &log})
	w.AddSystem(&recordingSystem{name: "ball", priority: 20, log: &log})

	w.Update(16 * time.Millisecond)

	want := []string{"player", "ball", "bounce", "display"}
	if len(log) != len(want) {
		t.Fatalf("Expected %d updates, got %v", len(want), log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Update %d: expected %s, got %s", i, want[i], log[i])
		}
	}
	if w.FrameNumber() != 1 {
		t.Errorf("Expected frame 1, got %d", w.FrameNumber())
	}
}

// TestUpdateClampsNegativeDelta verifies systems never see time running backwards
func TestUpdateClampsNegativeDelta(t *testing.T) {
	w := NewWorld()
	var log []string
	sys := &recordingSystem{name: "probe", log: &log}
	w.AddSystem(sys)

	w.Update(-time.Second)

	if sys.lastDt != 0 {
		t.Errorf("Expected dt 0, got %v", sys.lastDt)
	}
}

// TestSystemsReturnsCopy verifies callers cannot reorder the world's pipeline
func TestSystemsReturnsCopy(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "a", priority: 1, log: &log})
	w.AddSystem(&recordingSystem{name: "b", priority: 2, log: &log})

	got := w.Systems()
	got[0], got[1] = got[1], got[0]

	w.Update(0)
	if log[0] != "a" {
		t.Errorf("Mutating the copy changed run order: %v", log)
	}
}
