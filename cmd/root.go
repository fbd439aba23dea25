package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "asciiforge",
	Short: "Turn images and text into ASCII art",
	Long: `asciiforge converts images into character grids using several rendering
strategies (simple, blocks, dense, density) and renders text banners.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
