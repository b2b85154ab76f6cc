package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/volleyball/components"
)

// System is a per-frame update step over the world
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// World owns every entity of a match: one ball, two paddles, the score and its labels
// Entities are plain fields so they can never be created or destroyed mid-game
type World struct {
	Ball        components.BallComponent
	Paddles     [components.SideCount]components.PaddleComponent
	Score       components.ScoreComponent
	ScoreBoards [components.SideCount]components.ScoreBoardComponent

	mu          sync.RWMutex
	systems     []System
	frameNumber int64
}

// NewWorld creates a world with the ball at centre and both paddles at their outer edges
func NewWorld() *World {
	w := &World{
		Ball:    components.NewBall(),
		systems: make([]System, 0),
	}
	for side := components.SideLeft; side < components.SideCount; side++ {
		w.Paddles[side] = components.NewPaddle(side)
		w.ScoreBoards[side] = components.NewScoreBoard(side)
	}
	return w
}

// Paddle returns the paddle of the given side
func (w *World) Paddle(side components.Side) *components.PaddleComponent {
	return &w.Paddles[side]
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially for one frame
func (w *World) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	for _, system := range w.Systems() {
		system.Update(w, dt)
	}
	w.frameNumber++
}

// FrameNumber returns how many frames have been simulated
func (w *World) FrameNumber() int64 {
	return w.frameNumber
}
