// Command matchnotes turns free-text match notes into structured,
// time-ordered highlight events and per-player statistics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "matchnotes",
	Short: "Parse free-text match notes into structured highlight events",
	Long: `matchnotes converts informal, timestamped match notes into a
time-ordered event timeline with per-category clip windows and
per-player statistics, ready for highlight-video assembly.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
