package main

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/volleyball/audio"
	"github.com/lixenwraith/volleyball/core"
	"github.com/lixenwraith/volleyball/engine"
	"github.com/lixenwraith/volleyball/input"
	"github.com/lixenwraith/volleyball/render"
)

// game ties the simulation to the terminal and the speaker
type game struct {
	screen   tcell.Screen
	ctx      *engine.GameContext
	keys     *input.KeyTracker
	sound    audio.AudioPlayer // nil when no audio device is available
	renderer render.Renderer
	logger   *slog.Logger
	fps      int
}

// newGame wires input, audio and logging into the context and creates the renderer
func newGame(screen tcell.Screen, ctx *engine.GameContext, keys *input.KeyTracker, sound audio.AudioPlayer, logger *slog.Logger, fps int) *game {
	ctx.Input = keys
	if sound != nil {
		ctx.Audio = sound
	}
	if logger != nil {
		ctx.Logger = logger
	}
	return &game{
		screen:   screen,
		ctx:      ctx,
		keys:     keys,
		sound:    sound,
		renderer: render.NewTerminalRenderer(screen),
		logger:   ctx.Logger,
		fps:      fps,
	}
}

// handleEvent applies one terminal event, returns false when the player quits
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.UpdateDimensions()
		// Keys held across a resize are stale and the redraw time is not play time
		g.keys.ReleaseAll()
		g.ctx.Clock.Reset()
		w, h := g.screen.Size()
		g.logger.Debug("terminal resized", "cols", w, "rows", h)
		return true
	case *tcell.EventFocus:
		// Key releases outside the terminal are never seen
		if !ev.Focused {
			g.keys.ReleaseAll()
			g.logger.Debug("focus lost, keys released")
		}
		return true
	}

	switch g.keys.HandleEvent(ev) {
	case core.ActionQuit:
		return false
	case core.ActionToggleMute:
		if g.sound == nil {
			return true
		}
		enabled := g.sound.ToggleMute()
		g.logger.Info("sound toggled", "enabled", enabled)
	}
	return true
}

// frame advances the simulation by the elapsed time and draws the result
func (g *game) frame() {
	g.ctx.Step()
	g.draw()
}

func (g *game) draw() {
	g.renderer.RenderFrame(g.ctx.World, g.status())
}

func (g *game) status() render.Status {
	st := render.Status{FPS: g.fps}
	if g.sound != nil {
		st.AudioAvailable = g.sound.IsRunning()
		st.Muted = g.sound.IsMuted()
	}
	return st
}
