package render

import "github.com/lixenwraith/volleyball/engine"

// Renderer draws one frame of the world
type Renderer interface {
	RenderFrame(world *engine.World, status Status)
	UpdateDimensions()
}

var _ Renderer = (*TerminalRenderer)(nil)
