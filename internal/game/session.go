// Package game implements the pure simulation core: the bird, the pillar
// field, and the session controller that ties them together. It has no UI
// or audio dependencies; side effects leave through a Sink and presentation
// reads state through snapshots.
package game

import (
	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/config"
	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/core"
)

// Cause identifies what ended a run.
type Cause int

const (
	CauseNone Cause = iota
	CausePillar
	CauseGround
	CauseCeiling
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CausePillar:
		return "pillar"
	case CauseGround:
		return "ground"
	case CauseCeiling:
		return "ceiling"
	default:
		return "none"
	}
}

// Options configures a session at construction.
type Options struct {
	Seed     int64
	Settings config.Settings

	// Autopilot makes the session issue flap impulses on the bird's behalf.
	Autopilot bool

	// Background marks the session as a non-terminating menu backdrop: the
	// platform never shows a game-over presentation for it. Collision logic
	// still flips the running flag exactly like a player session.
	Background bool

	// Sink receives cue events; nil means no side effects.
	Sink Sink
}

// Session is the simulation controller. It owns one bird and one pillar
// field and runs the spawn/integrate/score/collide pass each update.
//
// A Session is single-use: it moves NotStarted -> Running -> GameOver and is
// then replaced through the Manager. All methods are intended for a single
// goroutine (the platform's frame loop).
type Session struct {
	bird  *Bird
	field *Field
	sink  Sink

	volumes    config.VolumeSettings
	autopilot  bool
	background bool

	started  bool
	running  bool
	gameOver bool
	cause    Cause
	score    int
}

// NewSession constructs a session in the NotStarted state. The bird and the
// pillar field exist immediately so background sessions can render before
// Begin is called.
func NewSession(opts Options) *Session {
	opts.Settings.Validate()

	sink := opts.Sink
	if sink == nil {
		sink = nopSink{}
	}

	return &Session{
		bird:       NewBird(core.ParseColor(opts.Settings.Bird.Color), opts.Settings.Bird.EyeSize),
		field:      NewField(opts.Seed),
		sink:       sink,
		volumes:    opts.Settings.Volumes,
		autopilot:  opts.Autopilot,
		background: opts.Background,
	}
}

// Begin transitions NotStarted -> Running: score resets, the bird is reset
// alive with zero velocity at the spawn point, and the session-start cue
// (music) fires. Calling Begin on an already started session is a no-op.
func (s *Session) Begin() {
	if s.started {
		return
	}
	s.started = true
	s.running = true
	s.score = 0

	s.bird.Y = BirdSpawnY
	s.bird.Vel = 0
	s.bird.Alive = true

	s.sink.Play(CueSessionStart, s.volumes.Music)
}

// Update advances the simulation by dt frame-units. It is a no-op unless the
// session is running or in background mode.
func (s *Session) Update(dt float64) {
	if !s.running && !s.background {
		return
	}

	s.field.Spawn(dt)
	s.bird.Integrate(dt)

	if s.autopilot && s.bird.Alive {
		s.runAutopilot()
	}

	s.field.Advance(dt)
	s.field.Cull()

	for i := s.field.MarkPassed(s.bird.X); i > 0; i-- {
		if s.score < MaxScore {
			s.score++
		}
		s.sink.Play(CueScore, s.volumes.Score)
	}

	if !s.gameOver {
		if cause := s.checkCollision(); cause != CauseNone {
			s.terminate(cause)
		}
	}
}

// runAutopilot applies the reactive avoidance heuristic: flap when the bird
// has fallen below the nearest upcoming gap's center by a margin while still
// dropping. There is intentionally no symmetric correction for overshooting
// above the gap; the falling side is the only one the heuristic handles.
func (s *Session) runAutopilot() {
	p := s.field.Nearest(s.bird.X)
	if p == nil {
		return
	}
	if s.bird.Y > p.GapCenterY+AutopilotMargin && s.bird.Vel > AutopilotVelThreshold {
		s.bird.Flap()
		s.sink.Play(CueFlap, s.volumes.Flap)
	}
}

// checkCollision tests the bird's circle against every pillar segment and
// the field bounds. Boundary contact counts: a bird resting exactly on the
// floor or ceiling is a collision.
func (s *Session) checkCollision() Cause {
	c := s.bird.Bounds()

	if c.Y-c.R <= 0 {
		return CauseCeiling
	}
	if c.Y+c.R >= FieldHeight {
		return CauseGround
	}

	for i := range s.field.pillars {
		top, bottom := s.field.pillars[i].Rects()
		if c.IntersectsRect(top) || c.IntersectsRect(bottom) {
			return CausePillar
		}
	}
	return CauseNone
}

// terminate performs the one-time transition into game over: the bird dies,
// the run stops, a small upward bounce starts the cosmetic wobble window,
// and the collision cue fires. Re-entry is guarded; a second collision in
// the same or a later update changes nothing.
func (s *Session) terminate(cause Cause) {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.running = false
	s.cause = cause

	s.bird.Alive = false
	s.bird.Vel = BounceVelocity
	s.bird.BounceTimer = BounceDuration

	s.sink.Play(CueCollision, s.volumes.Collision)
}

// RequestAction is the single player-facing intent entrypoint. It is a no-op
// unless the session is running with a live bird; otherwise the bird flaps
// and the flap cue fires.
func (s *Session) RequestAction() {
	if !s.running || !s.bird.Alive {
		return
	}
	s.bird.Flap()
	s.sink.Play(CueFlap, s.volumes.Flap)
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Running reports whether the session is in the Running state.
func (s *Session) Running() bool {
	return s.running
}

// GameOver reports whether the session has terminated.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Cause returns what ended the run, or CauseNone while it is live.
func (s *Session) Cause() Cause {
	return s.cause
}

// Background reports whether this is a non-terminating backdrop session.
func (s *Session) Background() bool {
	return s.background
}
