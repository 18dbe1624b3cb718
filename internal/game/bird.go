package game

import (
	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/core"
)

// Bird is the player/autopilot-controlled actor. Position and velocity are
// in logical playfield units; velocity only changes through gravity
// integration or a discrete flap impulse.
type Bird struct {
	X, Y     float64
	Vel      float64 // Vertical velocity, negative = up
	Rotation float64 // Degrees, derived from velocity each integration step
	Alive    bool
	Radius   float64

	// BounceTimer counts down the post-collision visual-nudge window.
	// It has no gameplay effect; renderers may use it for a cosmetic wobble.
	BounceTimer float64

	// Cosmetics, read from settings at construction.
	Color   core.Color
	EyeSize float64
}

// NewBird creates a live bird at the spawn position.
func NewBird(color core.Color, eyeSize float64) *Bird {
	return &Bird{
		X:       BirdX,
		Y:       BirdSpawnY,
		Alive:   true,
		Radius:  BirdRadius,
		Color:   color,
		EyeSize: eyeSize,
	}
}

// Flap sets the vertical velocity to the fixed upward impulse.
// The caller gates this on the bird being alive.
func (b *Bird) Flap() {
	b.Vel = FlapVelocity
}

// Integrate advances the bird by dt frame-units: gravity is accumulated into
// velocity (a weaker pull once dead, for the falling visual), velocity is
// clamped to its bounds, position advances, and rotation is recomputed as a
// clamped linear function of velocity.
func (b *Bird) Integrate(dt float64) {
	g := Gravity
	if !b.Alive {
		g = DeadGravity
	}

	b.Vel = core.ClampF(b.Vel+g*dt, MinVelocity, MaxDropSpeed)
	b.Y += b.Vel * dt
	b.Rotation = core.ClampF(b.Vel*RotationRate, RotationMin, RotationMax)

	if b.BounceTimer > 0 {
		b.BounceTimer -= dt
		if b.BounceTimer < 0 {
			b.BounceTimer = 0
		}
	}
}

// Bounds returns the bird's collision circle.
func (b *Bird) Bounds() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.Radius}
}
