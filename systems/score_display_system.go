package systems

import (
	"strconv"
	"time"

	"github.com/lixenwraith/volleyball/constants"
	"github.com/lixenwraith/volleyball/engine"
)

// ScoreDisplaySystem copies the score counters into the scoreboard labels
type ScoreDisplaySystem struct{}

// NewScoreDisplaySystem creates a new score display system
func NewScoreDisplaySystem() *ScoreDisplaySystem {
	return &ScoreDisplaySystem{}
}

// Priority returns the system's priority
func (s *ScoreDisplaySystem) Priority() int {
	return constants.PriorityScoreDisplay
}

// Update refreshes both labels, rewriting unchanged text is harmless
func (s *ScoreDisplaySystem) Update(world *engine.World, dt time.Duration) {
	for i := range world.ScoreBoards {
		board := &world.ScoreBoards[i]
		board.Text = strconv.Itoa(world.Score.Get(board.Side))
	}
}
