package game

// Physics and playfield tuning. All values are in logical playfield units;
// velocities and speeds are per frame-unit, where 1.0 frame-unit is one tick
// at the reference 60 FPS. The frame driver scales real elapsed time into
// frame-units, so the feel survives moderate frame-rate variance.
const (
	FieldWidth  = 1280.0
	FieldHeight = 720.0

	BirdX      = 220.0
	BirdSpawnY = 360.0
	BirdRadius = 26.0

	Gravity     = 0.55
	DeadGravity = 0.22 // Weaker pull for the post-collision falling visual

	FlapVelocity = -8.0
	MinVelocity  = -18.0
	MaxDropSpeed = 16.0

	// Rotation is a clamped linear function of vertical velocity, in degrees.
	RotationRate = 6.0
	RotationMin  = -35.0
	RotationMax  = 90.0

	ScrollSpeed   = 4.0
	PillarWidth   = 100.0
	GapHeight     = 250.0
	PillarSpacing = 420.0
	SpawnInterval = 105.0 // Frame-units between periodic spawns
	CullMargin    = 150.0 // Pillars are dropped once fully past the left edge by this much

	// Gap centers are drawn uniformly so both segments keep at least
	// GapEdgeMargin from the field edges. Periodic spawns tighten the band
	// by an extra GapSafetyMargin; the initial batch uses the plain bound.
	GapEdgeMargin   = 90.0
	GapSafetyMargin = 90.0

	InitialPillars = 3
	FirstPillarX   = FieldWidth + 100.0

	// Autopilot flaps when the bird sits below the gap center by more than
	// AutopilotMargin while falling faster than AutopilotVelThreshold. There
	// is deliberately no corrective action for drifting above the gap.
	AutopilotMargin       = 8.0
	AutopilotVelThreshold = 0.5

	MaxScore = 9999

	BounceVelocity = -6.5 // Small upward nudge applied on termination
	BounceDuration = 30.0 // Frame-units the cosmetic bounce window lasts
)
