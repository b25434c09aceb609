package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/triangle-dodger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning YAML",
	Long: `Print the tuning that play, window and sim would use, after the
config search and the difficulty preset. Redirect it to a file to start a
custom config.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadTuning()
	if err != nil {
		fail(err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail(err)
	}
	os.Stdout.Write(data)
}
