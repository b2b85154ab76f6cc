package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/volleyball/audio"
	"github.com/lixenwraith/volleyball/config"
	"github.com/lixenwraith/volleyball/constants"
	"github.com/lixenwraith/volleyball/core"
	"github.com/lixenwraith/volleyball/engine"
	"github.com/lixenwraith/volleyball/input"
	"github.com/lixenwraith/volleyball/systems"
)

var (
	muteFlag = flag.Bool("mute", false, "Start with sound muted (m toggles)")
	seedFlag = flag.Uint64("seed", 0, "Bounce jitter seed, 0 picks one from the clock")
	fpsFlag  = flag.Int("fps", 0, fmt.Sprintf("Frame rate, 1-%d (default %d)", constants.MaxFPS, constants.DefaultFPS))
)

func main() {
	flag.Parse()

	cfg := config.Load()
	if *muteFlag {
		cfg.AudioEnabled = false
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *fpsFlag != 0 {
		cfg.FPS = config.ClampFPS(*fpsFlag)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "volleyball: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger, logCloser, err := setupLogging(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	screen.EnableFocus()
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before the stack trace is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("crashed", "panic", r)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVOLLEYBALL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if cfg.KeyHold <= constants.KeyRepeatDelay {
		logger.Warn("key hold window below terminal auto-repeat delay, held keys may stutter",
			"key_hold", cfg.KeyHold,
			"repeat_delay", constants.KeyRepeatDelay,
		)
	}

	logger.Info("starting",
		"fps", cfg.FPS,
		"seed", cfg.Seed,
		"audio", cfg.AudioEnabled,
		"key_hold", cfg.KeyHold,
	)

	// Audio failure is not fatal, the game continues silently
	var player audio.AudioPlayer
	sound := audio.NewSoundManager(audioConfig(cfg))
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
	} else {
		defer sound.Cleanup()
		for _, loadErr := range sound.LoadErrors() {
			logger.Warn("sound file rejected, using synthesized cue", "error", loadErr)
		}
		player = sound
	}

	timeProvider := engine.NewMonotonicTimeProvider()
	ctx := engine.NewGameContext(timeProvider, engine.NewRandomSource(cfg.Seed))
	systems.AddAll(ctx)

	keys := input.NewKeyTracker(input.DefaultKeyTable(), timeProvider, cfg.KeyHold)
	g := newGame(screen, ctx, keys, player, logger, cfg.FPS)

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	go func() {
		// Panic recovery for input polling goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Nil once the screen is finalized
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	g.draw()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				logger.Info("shutdown",
					"left", ctx.World.Score.Left,
					"right", ctx.World.Score.Right,
					"frames", ctx.World.FrameNumber(),
				)
				return nil
			}
		case <-frameTicker.C:
			g.frame()
		}
	}
}

// audioConfig builds the sound manager configuration from the loaded settings
func audioConfig(cfg *config.Config) *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = cfg.AudioEnabled
	ac.MasterVolume = float64(cfg.MasterVolume) / 100
	ac.MusicVolume = float64(cfg.MusicVolume) / 100
	if cfg.BounceWAV != "" {
		ac.SoundFiles[core.SoundBounce] = cfg.BounceWAV
	}
	if cfg.ScoreWAV != "" {
		ac.SoundFiles[core.SoundScore] = cfg.ScoreWAV
	}
	return ac
}
