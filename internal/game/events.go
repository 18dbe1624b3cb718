package game

// Cue identifies a fire-and-forget side-effect event emitted by the session.
type Cue int

const (
	CueFlap Cue = iota
	CueScore
	CueCollision
	CueSessionStart
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueScore:
		return "score"
	case CueCollision:
		return "collision"
	case CueSessionStart:
		return "session_start"
	default:
		return "unknown"
	}
}

// Sink receives cue events from a session. Implementations must never block
// and must swallow their own failures; the simulation does not care whether
// a cue was actually played. Volume is a scalar in [0, 1].
type Sink interface {
	Play(cue Cue, volume float64)
}

// nopSink is used when no sink is configured.
type nopSink struct{}

func (nopSink) Play(Cue, float64) {}
