package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundBounce SoundType = iota // Wall, ceiling or paddle contact
	SoundScore                   // Ball touched the ground
	SoundTypeCount
)

// String returns the cue name used in logs and config keys
func (st SoundType) String() string {
	switch st {
	case SoundBounce:
		return "bounce"
	case SoundScore:
		return "score"
	default:
		return "unknown"
	}
}
