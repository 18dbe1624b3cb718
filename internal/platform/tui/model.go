package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/config"
	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/core"
	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/game"
)

// phase is the presentation state. The simulation itself only knows
// running and game-over; the countdown and overlays live up here.
type phase int

const (
	phaseMenu phase = iota
	phaseCountdown
	phaseRunning
	phaseGameOver
)

const (
	countdownSeconds = 3
	overlayDelay     = 700 * time.Millisecond

	// A tick is one frame at the reference rate. Wall-clock deltas are
	// converted to frame units and clamped so a stalled terminal cannot
	// teleport the bird through a pillar.
	referenceRate = 60.0
	maxFrameDelta = 3.0
)

// countdownMsg fires once per countdown second. Stale generations are
// dropped so an abandoned countdown can never start a newer session.
type countdownMsg struct {
	gen       uint64
	remaining int
}

// overlayMsg reveals the game-over overlay after its delay.
type overlayMsg struct {
	gen uint64
}

// Model is the top-level Bubble Tea model: menu, countdown, play and
// game-over presentation around the player session, with an autopilot
// session animating behind the menu.
type Model struct {
	cfg      core.RuntimeConfig
	settings config.Settings
	sink     game.Sink

	manager  *game.Manager
	backdrop *game.Session

	screen *core.Screen
	keys   *KeyMapper
	help   help.Model

	phase          phase
	countdown      int
	overlayVisible bool
	lastTick       time.Time
	quitting       bool
}

// NewModel creates the top-level model.
func NewModel(cfg core.RuntimeConfig, settings config.Settings, sink game.Sink) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		cfg:      cfg,
		settings: settings,
		sink:     sink,
		manager:  game.NewManager(),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     NewKeyMapper(),
		help:     help.New(),
		phase:    phaseMenu,
	}
	m.backdrop = m.newBackdrop()
	return m
}

// newBackdrop creates the self-playing session shown behind the menu.
// No sink: the menu stays silent.
func (m Model) newBackdrop() *game.Session {
	s := game.NewSession(game.Options{
		Seed:       time.Now().UnixNano(),
		Settings:   m.settings,
		Autopilot:  true,
		Background: true,
	})
	s.Begin()
	return s
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and advances the presentation state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action, isQuit := m.keys.MapKey(msg)
		if isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleAction(action)

	case tea.MouseMsg:
		return m.handleAction(m.keys.MapMouse(msg))

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case countdownMsg:
		return m.handleCountdown(msg)

	case overlayMsg:
		if m.manager.Valid(msg.gen) && m.phase == phaseGameOver {
			m.overlayVisible = true
		}
		return m, nil
	}

	return m, nil
}

// handleAction routes a game action according to the current phase.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	if action == core.ActionNone {
		return m, nil
	}

	switch m.phase {
	case phaseMenu:
		if action == core.ActionPrimary {
			return m.startCountdown()
		}

	case phaseCountdown:
		// Input is ignored until the countdown finishes.

	case phaseRunning:
		switch action {
		case core.ActionPrimary:
			if s := m.manager.Current(); s != nil {
				s.RequestAction()
			}
		case core.ActionBack:
			m.phase = phaseMenu
		}

	case phaseGameOver:
		switch action {
		case core.ActionRestart:
			return m.startCountdown()
		case core.ActionPrimary:
			if m.overlayVisible {
				return m.startCountdown()
			}
		case core.ActionBack:
			m.phase = phaseMenu
		}
	}

	return m, nil
}

// startCountdown installs a fresh session and schedules the countdown.
// Replace bumps the generation, which orphans any pending countdown or
// overlay message from the previous session.
func (m Model) startCountdown() (tea.Model, tea.Cmd) {
	gen := m.manager.Replace(game.NewSession(game.Options{
		Seed:     time.Now().UnixNano(),
		Settings: m.settings,
		Sink:     m.sink,
	}))

	m.phase = phaseCountdown
	m.countdown = countdownSeconds
	m.overlayVisible = false

	return m, tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownMsg{gen: gen, remaining: countdownSeconds - 1}
	})
}

// handleCountdown steps the countdown, starting the run at zero.
func (m Model) handleCountdown(msg countdownMsg) (tea.Model, tea.Cmd) {
	if !m.manager.Valid(msg.gen) || m.phase != phaseCountdown {
		return m, nil
	}

	m.countdown = msg.remaining
	if msg.remaining > 0 {
		return m, tea.Tick(time.Second, func(time.Time) tea.Msg {
			return countdownMsg{gen: msg.gen, remaining: msg.remaining - 1}
		})
	}

	if s := m.manager.Current(); s != nil {
		s.Begin()
	}
	m.phase = phaseRunning
	return m, nil
}

// handleTick advances whichever simulation the current phase shows.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
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

	switch m.phase {
	case phaseMenu, phaseCountdown:
		m.backdrop.Update(dt)
		// The backdrop should never die, but a resize storm or a very
		// unlucky clamp can kill it. Swap in a fresh one.
		if m.backdrop.GameOver() {
			m.backdrop = m.newBackdrop()
		}

	case phaseRunning, phaseGameOver:
		s := m.manager.Current()
		if s == nil {
			break
		}
		s.Update(dt)
		if m.phase == phaseRunning && s.GameOver() {
			m.phase = phaseGameOver
			m.overlayVisible = false
			gen := m.manager.Generation()
			return m, tea.Batch(
				tickCmd(m.cfg.TickRate),
				tea.Tick(overlayDelay, func(time.Time) tea.Msg {
					return overlayMsg{gen: gen}
				}),
			)
		}
	}

	return m, tickCmd(m.cfg.TickRate)
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseMenu:
		game.Render(m.backdrop.Snapshot(), m.screen)
		m.drawMenu()

	case phaseCountdown:
		game.Render(m.backdrop.Snapshot(), m.screen)
		m.drawCountdown()

	case phaseRunning, phaseGameOver:
		s := m.manager.Current()
		if s == nil {
			m.screen.Clear()
			break
		}
		game.Render(s.Snapshot(), m.screen)
		if m.phase == phaseGameOver && m.overlayVisible {
			m.drawGameOver(s)
		}
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

func (m Model) drawMenu() {
	mid := m.screen.Height() / 2
	m.screen.DrawTextCentered(mid-3, "F L A P P Y   B I R D", core.ColorBrightYellow)
	m.screen.DrawTextCentered(mid-1, "press space to play", core.ColorBrightWhite)
	m.screen.DrawTextCentered(mid+1, "q to quit", core.ColorGray)
}

func (m Model) drawCountdown() {
	n := m.countdown
	if n < 1 {
		n = 1
	}
	m.screen.DrawTextCentered(m.screen.Height()/2, fmt.Sprintf("  %d  ", n), core.ColorBrightWhite)
}

func (m Model) drawGameOver(s *game.Session) {
	mid := m.screen.Height() / 2
	m.screen.DrawTextCentered(mid-2, " G A M E   O V E R ", core.ColorRed)
	m.screen.DrawTextCentered(mid, fmt.Sprintf(" Score: %d ", s.Score()), core.ColorBrightWhite)
	m.screen.DrawTextCentered(mid+2, " r to restart, esc for menu ", core.ColorGray)
}

// Run starts the Bubble Tea program for a local terminal.
func Run(cfg core.RuntimeConfig, settings config.Settings, sink game.Sink) error {
	p := tea.NewProgram(
		NewModel(cfg, settings, sink),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
