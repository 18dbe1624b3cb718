package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/config"
	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/core"
	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/game"
)

// demoModel shows a self-playing session with no interaction beyond quit.
type demoModel struct {
	cfg      core.RuntimeConfig
	session  *game.Session
	screen   *core.Screen
	keys     *KeyMapper
	lastTick time.Time
	quitting bool
}

func newDemoModel(cfg core.RuntimeConfig, settings config.Settings) demoModel {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := game.NewSession(game.Options{
		Seed:       seed,
		Settings:   settings,
		Autopilot:  true,
		Background: true,
	})
	s.Begin()

	return demoModel{
		cfg:     cfg,
		session: s,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    NewKeyMapper(),
	}
}

func (m demoModel) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if _, isQuit := m.keys.MapKey(msg); isQuit {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
	case TickMsg:
		now := time.Time(msg)
		dt := 1.0
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick).Seconds() * referenceRate
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}
			if dt < 0 {
				dt = 0
			}
		}
		m.lastTick = now
		m.session.Update(dt)
		return m, tickCmd(m.cfg.TickRate)
	}
	return m, nil
}

func (m demoModel) View() string {
	if m.quitting {
		return ""
	}
	game.Render(m.session.Snapshot(), m.screen)
	m.screen.DrawText(2, 1, " autopilot ", core.ColorGray)
	return RenderScreen(m.screen)
}

// RunDemo starts a non-interactive autopilot showcase.
func RunDemo(cfg core.RuntimeConfig, settings config.Settings) error {
	p := tea.NewProgram(
		newDemoModel(cfg, settings),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
