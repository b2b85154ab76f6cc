package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/volleyball/components"
	"github.com/lixenwraith/volleyball/constants"
	"github.com/lixenwraith/volleyball/engine"
)

// Status is the non-simulation state shown on the status bar
type Status struct {
	Muted          bool
	AudioAvailable bool
	FPS            int // target frame rate, hidden when zero
}

// TerminalRenderer draws the world onto a tcell screen
// The bottom row holds the status bar, the rest is the arena
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	proj   Projection
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions re-reads the screen size, call after a resize event
func (r *TerminalRenderer) UpdateDimensions() {
	r.width, r.height = r.screen.Size()
	r.proj = Projection{Cols: r.width, Rows: r.height - 1}
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(world *engine.World, status Status) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	if r.proj.Valid() {
		for i := range world.Paddles {
			r.drawPaddle(world.Paddles[i], defaultStyle)
		}
		r.drawBall(world.Ball, defaultStyle)
		for i := range world.ScoreBoards {
			r.drawScoreBoard(world.ScoreBoards[i], defaultStyle)
		}
	}
	r.drawStatusBar(status, defaultStyle)

	r.screen.Show()
}

// drawPaddle fills every cell the paddle box covers
func (r *TerminalRenderer) drawPaddle(p components.PaddleComponent, defaultStyle tcell.Style) {
	glyph, color := constants.GlyphLeftPlayer, RgbLeftPlayer
	if p.Side == components.SideRight {
		glyph, color = constants.GlyphRightPlayer, RgbRightPlayer
	}
	style := defaultStyle.Foreground(color)

	left, bottom, right, top := p.Bounds()
	c0, c1 := r.proj.Col(left), r.proj.Col(right)
	r0, r1 := r.proj.Row(top), r.proj.Row(bottom)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawBall(b components.BallComponent, defaultStyle tcell.Style) {
	col, row := r.proj.Cell(b.X, b.Y)
	r.screen.SetContent(col, row, constants.GlyphBall, nil, defaultStyle.Foreground(RgbBall))
}

// drawScoreBoard writes the label beside its anchor, left labels end at the anchor
func (r *TerminalRenderer) drawScoreBoard(sb components.ScoreBoardComponent, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbScore).Bold(true)
	col := r.proj.Col(sb.X)
	row := r.proj.RowFromTop(sb.Y)
	text := []rune(sb.Text)
	if sb.GrowsLeft() {
		col -= len(text) - 1
	}
	r.drawText(col, row, text, style)
}

func (r *TerminalRenderer) drawStatusBar(status Status, defaultStyle tcell.Style) {
	row := r.height - 1
	if row < 0 {
		return
	}

	col := r.drawText(0, row, []rune(constants.WindowTitle+"  A/D  ←/→  m:mute  q:quit  "), defaultStyle.Bold(true))

	switch {
	case !status.AudioAvailable:
		col = r.drawText(col, row, []rune("[no audio]"), defaultStyle)
	case status.Muted:
		col = r.drawText(col, row, []rune("[muted]"), defaultStyle.Foreground(RgbStatusMuted))
	default:
		col = r.drawText(col, row, []rune("[sound on]"), defaultStyle.Foreground(RgbStatusActive))
	}

	if status.FPS > 0 {
		r.drawText(col, row, []rune("  "+strconv.Itoa(status.FPS)+"fps"), defaultStyle)
	}
}

// drawText writes runes left to right, clipped to the screen, returns the next column
func (r *TerminalRenderer) drawText(col, row int, text []rune, style tcell.Style) int {
	for _, ch := range text {
		if col >= 0 && col < r.width {
			r.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
	return col
}
