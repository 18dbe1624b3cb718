package game

import (
	"strings"
	"testing"

	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/config"
	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/core"
)

func TestRenderDrawsBirdAndGround(t *testing.T) {
	s := NewSession(Options{Seed: 1, Settings: config.DefaultSettings()})
	s.Begin()

	screen := core.NewScreen(80, 24)
	Render(s.Snapshot(), screen)

	out := screen.String()
	if !strings.ContainsRune(out, birdBodyChar) {
		t.Error("bird body missing from the rendered frame")
	}
	if !strings.ContainsRune(out, groundChar) {
		t.Error("ground line missing from the rendered frame")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("score HUD missing from a player session frame")
	}
}

func TestRenderBackgroundHidesHUD(t *testing.T) {
	s := NewSession(Options{Seed: 1, Settings: config.DefaultSettings(), Background: true})
	s.Begin()

	screen := core.NewScreen(80, 24)
	Render(s.Snapshot(), screen)

	if strings.Contains(screen.String(), "Score:") {
		t.Error("background frames must not carry the score HUD")
	}
}

func TestRenderDeadBirdMarker(t *testing.T) {
	s := NewSession(Options{Seed: 1, Settings: config.DefaultSettings()})
	s.Begin()
	s.terminate(CausePillar)

	screen := core.NewScreen(80, 24)
	Render(s.Snapshot(), screen)

	if !strings.ContainsRune(screen.String(), birdDeadChar) {
		t.Error("dead bird should render with the crash marker")
	}
}
