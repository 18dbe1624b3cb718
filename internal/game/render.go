package game

import (
	"fmt"

	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/core"
)

// Visual characters for rendering.
const (
	pillarChar   = '█'
	pillarCapTop = '▄'
	pillarCapBot = '▀'
	groundChar   = '═'
	birdBodyChar = '●'
	birdBeakChar = '▶'
	birdEyeChar  = 'ᵒ'
	birdDeadChar = '✕'
)

// Render draws a session snapshot onto the screen buffer, mapping the fixed
// 1280x720 logical playfield to whatever cell grid the terminal offers.
// Presentation chrome (menus, overlays, countdowns) is drawn by the platform
// layer on top of this.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()
	if w < 2 || h < 2 {
		return
	}

	sx := float64(w) / FieldWidth
	sy := float64(h-1) / FieldHeight // Last row is the ground line

	// Pillars
	for _, p := range snap.Pillars {
		drawPillar(dst, p, sx, sy)
	}

	// Ground
	dst.DrawHLine(0, h-1, w, groundChar, core.ColorGray)

	// Bird
	drawBird(dst, snap.Bird, sx, sy)

	// HUD
	if !snap.Background {
		dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
	}
}

func drawPillar(dst *core.Screen, p PillarSnapshot, sx, sy float64) {
	left := int(p.X * sx)
	right := int((p.X + PillarWidth) * sx)
	if right <= left {
		right = left + 1
	}
	gapTop := int((p.GapCenterY - GapHeight/2) * sy)
	gapBottom := int((p.GapCenterY + GapHeight/2) * sy)
	groundRow := dst.Height() - 1

	for x := left; x < right; x++ {
		for y := 0; y < gapTop-1; y++ {
			dst.SetCell(x, y, pillarChar, core.ColorGreen)
		}
		if gapTop > 0 {
			dst.SetCell(x, gapTop-1, pillarCapTop, core.ColorGreen)
		}
		if gapBottom < groundRow {
			dst.SetCell(x, gapBottom, pillarCapBot, core.ColorGreen)
		}
		for y := gapBottom + 1; y < groundRow; y++ {
			dst.SetCell(x, y, pillarChar, core.ColorGreen)
		}
	}
}

func drawBird(dst *core.Screen, b BirdSnapshot, sx, sy float64) {
	cx := int(b.X * sx)
	cy := int(b.Y * sy)

	if !b.Alive {
		dst.SetCell(cx, cy, birdDeadChar, b.Color)
		return
	}

	dst.SetCell(cx, cy, birdBodyChar, b.Color)
	dst.SetCell(cx+1, cy, birdBeakChar, core.ColorOrange)
	// A larger configured eye gets its own cell above the beak.
	if b.EyeSize >= 10 {
		dst.SetCell(cx+1, cy-1, birdEyeChar, core.ColorBrightWhite)
	}
}
