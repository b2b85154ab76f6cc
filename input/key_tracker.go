package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/volleyball/core"
	"github.com/lixenwraith/volleyball/engine"
)

// KeyTracker derives held state for paddle keys from press and repeat events
// Terminals never report key release, so a key stays held for a hold window
// after its most recent event and then lapses on its own
type KeyTracker struct {
	table    *KeyTable
	clock    engine.TimeProvider
	hold     time.Duration
	lastSeen [core.ActionCount]time.Time
}

// NewKeyTracker creates a tracker using the given bindings and hold window
func NewKeyTracker(table *KeyTable, clock engine.TimeProvider, hold time.Duration) *KeyTracker {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &KeyTracker{
		table: table,
		clock: clock,
		hold:  hold,
	}
}

// HandleEvent records a terminal event and returns the action it maps to
// Holdable actions are tracked, one-shot actions are returned for the caller to act on
func (kt *KeyTracker) HandleEvent(ev tcell.Event) core.Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return core.ActionNone
	}
	action := kt.table.Lookup(key)
	if action.IsHoldable() {
		kt.lastSeen[action] = kt.clock.Now()
		// A terminal cannot report both directions held, the newest press wins
		kt.Release(opposite[action])
	}
	return action
}

var opposite = [core.ActionCount]core.Action{
	core.ActionLeftPaddleLeft:   core.ActionLeftPaddleRight,
	core.ActionLeftPaddleRight:  core.ActionLeftPaddleLeft,
	core.ActionRightPaddleLeft:  core.ActionRightPaddleRight,
	core.ActionRightPaddleRight: core.ActionRightPaddleLeft,
}

// Held implements engine.InputState
func (kt *KeyTracker) Held(action core.Action) bool {
	if !action.IsHoldable() {
		return false
	}
	seen := kt.lastSeen[action]
	if seen.IsZero() {
		return false
	}
	return kt.clock.Now().Sub(seen) < kt.hold
}

// Release drops held state for the action
func (kt *KeyTracker) Release(action core.Action) {
	if action.IsHoldable() {
		kt.lastSeen[action] = time.Time{}
	}
}

// ReleaseAll clears every held key
func (kt *KeyTracker) ReleaseAll() {
	kt.lastSeen = [core.ActionCount]time.Time{}
}
