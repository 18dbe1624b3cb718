// flappybird is a terminal rendition of the one-button pipe dodger.
//
// Usage:
//
//	flappybird play    - Play in the current terminal
//	flappybird demo    - Watch the autopilot play
//	flappybird serve   - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible runs
//	--config <path>   - Path to a custom settings YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappybird",
	Short: "Flappy Bird in your terminal",
	Long: `A one-button arcade game for the terminal: flap through the gaps,
one point per pillar, one mistake per run.

Available commands:
  play     - Play in the current terminal
  demo     - Watch the autopilot play
  serve    - Start SSH server for remote play

Examples:
  flappybird play
  flappybird play --seed 42
  flappybird demo
  flappybird serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
}
