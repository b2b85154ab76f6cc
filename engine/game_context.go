package engine

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/volleyball/core"
)

// InputState reports which logical keys are currently held
type InputState interface {
	Held(action core.Action) bool
}

// AudioPlayer accepts fire-and-forget sound cues
type AudioPlayer interface {
	Play(core.SoundType) bool
}

// GameContext holds the world and the collaborators systems read from
type GameContext struct {
	World *World

	// Clock collaborator, Clock derives per-frame delta from TimeProvider
	TimeProvider TimeProvider
	Clock        *FrameClock

	Input  InputState
	Audio  AudioPlayer
	Rand   RandomSource
	Logger *slog.Logger
}

// NewGameContext creates a context with a fresh world
// Input reports nothing held and audio is absent until the caller wires them
func NewGameContext(timeProvider TimeProvider, rng RandomSource) *GameContext {
	if timeProvider == nil {
		timeProvider = NewMonotonicTimeProvider()
	}
	if rng == nil {
		rng = NewRandomSource(0)
	}
	return &GameContext{
		World:        NewWorld(),
		TimeProvider: timeProvider,
		Clock:        NewFrameClock(timeProvider),
		Input:        noInput{},
		Rand:         rng,
		Logger:       slog.New(slog.DiscardHandler),
	}
}

// PlaySound forwards a cue to the audio collaborator if one is wired
func (g *GameContext) PlaySound(st core.SoundType) {
	if g.Audio == nil {
		return
	}
	g.Audio.Play(st)
}

// Held reports whether an action is held, false when no input is wired
func (g *GameContext) Held(action core.Action) bool {
	if g.Input == nil {
		return false
	}
	return g.Input.Held(action)
}

// Step advances the clock and runs one frame, returning the delta used
func (g *GameContext) Step() time.Duration {
	dt := g.Clock.Tick()
	g.World.Update(dt)
	return dt
}

type noInput struct{}

func (noInput) Held(core.Action) bool { return false }
