package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/config"
	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/platform/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the autopilot play",
	Long: `Run a self-playing session. Useful for checking a terminal's
rendering and as a screensaver.

Examples:
  flappybird demo
  flappybird demo --seed 42`,
	Run: runDemo,
}

func runDemo(_ *cobra.Command, _ []string) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	if err := tui.RunDemo(terminalConfig(), settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		os.Exit(1)
	}
}
