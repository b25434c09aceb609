// dodger is Triangle Dodger: steer a triangle around falling circles, in the
// terminal or in a window.
//
// Usage:
//
//	dodger play     - Play in the terminal
//	dodger window   - Play in a desktop window
//	dodger sim      - Run a headless simulation
//	dodger config   - Print the effective tuning
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Tuning YAML (default: search ~/.dodger/configs, ./configs)
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Triangle Dodger - dodge the falling circles",
	Long: `Triangle Dodger is an arcade game: steer a triangle around circles
falling ever faster, and survive as long as you can.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run a headless simulation
  config   - Print the effective tuning YAML

Examples:
  dodger play
  dodger window --difficulty hard
  dodger sim --autopilot --duration 2m --metrics
  dodger config > ~/.dodger/configs/dodger.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
