package constants

// Game Loop Timing
const (
	// DefaultFPS is the frame rate used when none is configured
	DefaultFPS = 60

	// MaxFPS caps the -fps flag
	MaxFPS = 240

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 100
)

// System Execution Priorities (lower runs first)
// Order: input -> paddle -> ball integration -> bounce -> scoring -> display
const (
	PriorityPlayer       = 10
	PriorityBall         = 20
	PriorityBounce       = 30
	PriorityScoring      = 40
	PriorityScoreDisplay = 50
)
