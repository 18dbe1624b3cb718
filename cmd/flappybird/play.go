package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/audio"
	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/config"
	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/core"
	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/game"
	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W   - Flap (also starts a run from the menu)
  Mouse click  - Flap
  R/Enter      - Restart (after game over)
  Esc/B        - Back to menu
  Q/Ctrl+C     - Quit

Examples:
  flappybird play
  flappybird play --seed 42
  flappybird play --config ./my-settings.yaml
  flappybird play --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	cfg := terminalConfig()

	var sink game.Sink
	if !flagMute {
		engine := audio.NewEngine(log.NewWithOptions(os.Stderr, log.Options{Prefix: "audio"}))
		defer engine.Close()
		sink = engine
	}

	if err := tui.Run(cfg, settings, sink); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// terminalConfig builds the runtime config from the terminal size and
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
