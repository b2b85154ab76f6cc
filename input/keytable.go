package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/volleyball/core"
)

// KeyTable maps terminal keys to logical actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]core.Action

	// Rune bindings, matched case-insensitively
	Runes map[rune]core.Action
}

// DefaultKeyTable returns the default key bindings
// A/D drive the left paddle, the arrow keys drive the right one
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]core.Action{
			tcell.KeyLeft:   core.ActionRightPaddleLeft,
			tcell.KeyRight:  core.ActionRightPaddleRight,
			tcell.KeyEscape: core.ActionQuit,
			tcell.KeyCtrlC:  core.ActionQuit,
		},
		Runes: map[rune]core.Action{
			'a': core.ActionLeftPaddleLeft,
			'd': core.ActionLeftPaddleRight,
			'm': core.ActionToggleMute,
			'q': core.ActionQuit,
		},
	}
}

// Lookup resolves a key event to its action, ActionNone if unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) core.Action {
	if ev.Key() == tcell.KeyRune {
		if action, ok := kt.Runes[unicode.ToLower(ev.Rune())]; ok {
			return action
		}
		return core.ActionNone
	}
	if action, ok := kt.SpecialKeys[ev.Key()]; ok {
		return action
	}
	return core.ActionNone
}
