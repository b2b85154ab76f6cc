package components

import "github.com/lixenwraith/volleyball/constants"

// ScoreComponent holds both players' points for the process lifetime
type ScoreComponent struct {
	Left  int
	Right int
}

// Get returns the points of the given side
func (s ScoreComponent) Get(side Side) int {
	if side == SideLeft {
		return s.Left
	}
	return s.Right
}

// Increment awards one point to the given side
func (s *ScoreComponent) Increment(side Side) {
	if side == SideLeft {
		s.Left++
		return
	}
	s.Right++
}

// ScoreBoardComponent is the on-screen label of one side's score
// X, Y are the label anchor in arena units measured from the top-left
type ScoreBoardComponent struct {
	Side Side
	X, Y float64
	Text string
}

// GrowsLeft reports whether the label ends at its anchor instead of starting there
// Left labels extend away from the centre line, so multi-digit scores never cross it
func (sb ScoreBoardComponent) GrowsLeft() bool {
	return sb.Side == SideLeft
}

// NewScoreBoard creates the label for a side, anchored beside the centre line
func NewScoreBoard(side Side) ScoreBoardComponent {
	x := constants.ArenaWidth/2 + constants.ScoreBoardOffsetX
	if side == SideLeft {
		x = constants.ArenaWidth/2 - constants.ScoreBoardOffsetX
	}
	return ScoreBoardComponent{
		Side: side,
		X:    x,
		Y:    constants.ScoreBoardOffsetY,
		Text: "0",
	}
}
