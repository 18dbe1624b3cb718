package game

import (
	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/core"
)

// BirdSnapshot is the render-facing view of the bird.
type BirdSnapshot struct {
	X, Y        float64
	Vel         float64
	Rotation    float64
	Alive       bool
	Radius      float64
	BounceTimer float64
	Color       core.Color
	EyeSize     float64
}

// PillarSnapshot is the render-facing view of one pillar.
type PillarSnapshot struct {
	X          float64
	GapCenterY float64
	Passed     bool
}

// Snapshot captures the complete session state for rendering and for
// determinism checks in tests.
type Snapshot struct {
	Score      int
	Running    bool
	GameOver   bool
	Background bool
	Cause      Cause
	Bird       BirdSnapshot
	Pillars    []PillarSnapshot
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	pillars := make([]PillarSnapshot, len(s.field.pillars))
	for i, p := range s.field.pillars {
		pillars[i] = PillarSnapshot{X: p.X, GapCenterY: p.GapCenterY, Passed: p.Passed}
	}

	return Snapshot{
		Score:      s.score,
		Running:    s.running,
		GameOver:   s.gameOver,
		Background: s.background,
		Cause:      s.cause,
		Bird: BirdSnapshot{
			X:           s.bird.X,
			Y:           s.bird.Y,
			Vel:         s.bird.Vel,
			Rotation:    s.bird.Rotation,
			Alive:       s.bird.Alive,
			Radius:      s.bird.Radius,
			BounceTimer: s.bird.BounceTimer,
			Color:       s.bird.Color,
			EyeSize:     s.bird.EyeSize,
		},
		Pillars: pillars,
	}
}
