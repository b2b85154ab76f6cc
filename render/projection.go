package render

import (
	"math"

	"github.com/lixenwraith/volleyball/constants"
)

// Projection maps arena units (origin bottom-left, y up) onto a cell grid (origin top-left)
type Projection struct {
	Cols, Rows int
}

// Col returns the column holding arena x, clamped to the grid
func (p Projection) Col(x float64) int {
	return clampInt(int(math.Floor(x/constants.ArenaWidth*float64(p.Cols))), 0, p.Cols-1)
}

// Row returns the row holding arena y, clamped to the grid
func (p Projection) Row(y float64) int {
	fromBottom := int(math.Floor(y / constants.ArenaHeight * float64(p.Rows)))
	return clampInt(p.Rows-1-fromBottom, 0, p.Rows-1)
}

// RowFromTop returns the row at a distance measured down from the arena's top edge
func (p Projection) RowFromTop(d float64) int {
	return clampInt(int(math.Floor(d/constants.ArenaHeight*float64(p.Rows))), 0, p.Rows-1)
}

// Cell returns the (col, row) holding an arena point
func (p Projection) Cell(x, y float64) (int, int) {
	return p.Col(x), p.Row(y)
}

// Valid reports whether the grid has at least one cell
func (p Projection) Valid() bool {
	return p.Cols > 0 && p.Rows > 0
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
