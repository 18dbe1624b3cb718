package game

import (
	"math/rand"

	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/core"
)

// Pillar is one scrollable paired barrier with a passable gap.
type Pillar struct {
	X          float64 // Left edge, decreases monotonically
	GapCenterY float64 // Fixed at creation
	Passed     bool    // Set exactly once when the trailing edge crosses the bird
}

// Advance scrolls the pillar left by the fixed speed.
func (p *Pillar) Advance(dt float64) {
	p.X -= ScrollSpeed * dt
}

// Rects returns the two collidable rectangles: the top segment from the
// field ceiling down to the gap, and the bottom segment from the gap down
// to the field floor.
func (p *Pillar) Rects() (top, bottom core.Rect) {
	gapTop := p.GapCenterY - GapHeight/2
	gapBottom := p.GapCenterY + GapHeight/2

	top = core.NewRect(p.X, 0, PillarWidth, gapTop)
	bottom = core.NewRect(p.X, gapBottom, PillarWidth, FieldHeight-gapBottom)
	return top, bottom
}

// Field owns the live pillar collection, the spawn timer, and the RNG that
// places gaps. Pillars are spaced exactly PillarSpacing apart: the spawn
// timer only gates when a pillar is appended, never where.
type Field struct {
	pillars  []Pillar
	rng      *rand.Rand
	spawnAcc float64
}

// NewField creates a field seeded for deterministic gap placement and spawns
// the initial pillar batch off the right edge.
func NewField(seed int64) *Field {
	f := &Field{
		pillars: make([]Pillar, 0, 8),
		rng:     rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < InitialPillars; i++ {
		f.pillars = append(f.pillars, Pillar{
			X:          FirstPillarX + float64(i)*PillarSpacing,
			GapCenterY: f.gapCenter(GapEdgeMargin),
		})
	}
	return f
}

// gapCenter draws a gap center uniformly so both pillar segments keep at
// least margin from the field edges. Degenerate bands clamp to their center.
func (f *Field) gapCenter(margin float64) float64 {
	lo := margin + GapHeight/2
	hi := FieldHeight - margin - GapHeight/2
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + f.rng.Float64()*(hi-lo)
}

// Spawn accumulates dt into the spawn timer and appends one pillar at the
// fixed spacing from the previous one once the interval is exceeded.
// Periodic spawns apply the additional safety margin to gap placement.
func (f *Field) Spawn(dt float64) {
	f.spawnAcc += dt
	if f.spawnAcc < SpawnInterval {
		return
	}
	f.spawnAcc = 0

	x := FirstPillarX
	if n := len(f.pillars); n > 0 {
		x = f.pillars[n-1].X + PillarSpacing
	}
	f.pillars = append(f.pillars, Pillar{
		X:          x,
		GapCenterY: f.gapCenter(GapEdgeMargin + GapSafetyMargin),
	})
}

// Advance scrolls all pillars left.
func (f *Field) Advance(dt float64) {
	for i := range f.pillars {
		f.pillars[i].Advance(dt)
	}
}

// Cull drops pillars fully past the left edge with margin.
func (f *Field) Cull() {
	live := f.pillars[:0]
	for _, p := range f.pillars {
		if p.X+PillarWidth > -CullMargin {
			live = append(live, p)
		}
	}
	f.pillars = live
}

// MarkPassed flags every not-yet-passed pillar whose trailing edge has
// crossed x and returns how many were newly flagged this call.
func (f *Field) MarkPassed(x float64) int {
	passed := 0
	for i := range f.pillars {
		if !f.pillars[i].Passed && f.pillars[i].X+PillarWidth < x {
			f.pillars[i].Passed = true
			passed++
		}
	}
	return passed
}

// Nearest returns the pillar whose trailing edge is still ahead of x and
// closest to it, or nil when none is upcoming.
func (f *Field) Nearest(x float64) *Pillar {
	var nearest *Pillar
	for i := range f.pillars {
		p := &f.pillars[i]
		if p.X+PillarWidth <= x {
			continue
		}
		if nearest == nil || p.X < nearest.X {
			nearest = p
		}
	}
	return nearest
}

// Pillars returns the live pillar collection.
func (f *Field) Pillars() []Pillar {
	return f.pillars
}
