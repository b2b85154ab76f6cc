package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/volleyball/constants"
)

type Config struct {
	// Audio
	AudioEnabled bool
	MasterVolume int // percent
	MusicVolume  int // percent
	BounceWAV    string
	ScoreWAV     string

	// Logging
	LogFile  string
	LogLevel slog.Level

	// Game
	KeyHold time.Duration
	Seed    uint64
	FPS     int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Audio
		AudioEnabled: getEnvBool("VOLLEYBALL_AUDIO_ENABLED", true),
		MasterVolume: clampPercent(getEnvInt("VOLLEYBALL_MASTER_VOLUME", 100)),
		MusicVolume:  clampPercent(getEnvInt("VOLLEYBALL_MUSIC_VOLUME", 25)),
		BounceWAV:    getEnv("VOLLEYBALL_BOUNCE_WAV", ""),
		ScoreWAV:     getEnv("VOLLEYBALL_SCORE_WAV", ""),

		// Logging
		LogFile:  getEnv("VOLLEYBALL_LOG_FILE", ""),
		LogLevel: parseLevel(getEnv("VOLLEYBALL_LOG_LEVEL", "info")),

		// Game
		KeyHold: time.Duration(getEnvInt("VOLLEYBALL_KEY_HOLD_MS", int(constants.DefaultKeyHold/time.Millisecond))) * time.Millisecond,
		Seed:    getEnvUint("VOLLEYBALL_SEED", 0),
		FPS:     ClampFPS(getEnvInt("VOLLEYBALL_FPS", constants.DefaultFPS)),
	}
}

// FrameInterval returns the ticker period for the configured frame rate
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(ClampFPS(c.FPS))
}

// ClampFPS bounds a frame rate to 1..MaxFPS, non-positive values fall back to the default
func ClampFPS(fps int) int {
	if fps <= 0 {
		return constants.DefaultFPS
	}
	if fps > constants.MaxFPS {
		return constants.MaxFPS
	}
	return fps
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func clampPercent(v int) int {
	return max(0, min(100, v))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintVal, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
