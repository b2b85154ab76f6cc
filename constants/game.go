package constants

// Arena geometry, in arena units with the origin at the bottom-left corner
const (
	ArenaWidth  = 800.0
	ArenaHeight = 600.0
)

// Player (paddle) box and lane speed
const (
	PlayerWidth  = 22.0
	PlayerHeight = 32.0

	// PlayerSpeed is horizontal paddle speed in units per second
	PlayerSpeed = 60.0
)

// Ball launch state and size
const (
	BallVelocityX = 30.0
	BallVelocityY = 0.0
	BallRadius    = 4.0
)

// GravityAcceleration is applied to the ball's vertical velocity (units/s^2)
const GravityAcceleration = -40.0

// Paddle bounce jitter, applied to |vx| as a factor in [min, max)
const (
	BounceFactorMin = 0.6
	BounceFactorMax = 1.4
)

// Scoreboard placement relative to the arena centre line and top edge
const (
	ScoreBoardOffsetX = 25.0
	ScoreBoardOffsetY = 25.0
)
