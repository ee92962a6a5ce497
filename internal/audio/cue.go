// Package audio plays short synthesized cues for gameplay events.
package audio

// Cue names one sound effect.
type Cue uint8

const (
	CueHop Cue = iota
	CueSplat
	CueGoal
	CueExtraLife
	CueLevelUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueHop:
		return "hop"
	case CueSplat:
		return "splat"
	case CueGoal:
		return "goal"
	case CueExtraLife:
		return "extra-life"
	case CueLevelUp:
		return "level-up"
	case CueGameOver:
		return "game-over"
	}
	return "unknown"
}

// Cuer plays cues without blocking the caller.
type Cuer interface {
	Play(Cue)
}

// Nop is a Cuer that stays silent.
type Nop struct{}

func (Nop) Play(Cue) {}
