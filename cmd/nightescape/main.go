// nightescape is a 2D stealth platformer for the terminal and the desktop.
//
// Usage:
//
//	nightescape play           - Play in the terminal
//	nightescape menu           - Start menu (play, high scores, quit)
//	nightescape window         - Play in a desktop window
//	nightescape levels         - List the level catalog
//	nightescape scores         - Show the best runs
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.nightescape/runs.db)
//	--config <path>       - Custom tuning YAML
//	--watch               - Reload the tuning file while playing
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Log file, "-" for stderr (default: ~/.nightescape/nightescape.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagWatch    bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nightescape",
	Short: "Escape the Night - a stealth platformer",
	Long: `Escape the Night is a small stealth platformer. Collect notes, find the
key and reach the exit of each level while the entity hunts for noise.
Running fast and jumping make noise; make too much and it comes for you.

Available commands:
  play     - Play in the terminal
  menu     - Start menu with high scores
  window   - Play in a desktop window
  levels   - List the levels
  scores   - View the best runs

Examples:
  nightescape play
  nightescape play --config ./escape.yaml --watch
  nightescape window --scale 1.5
  nightescape scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.nightescape/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log file path, "-" for stderr`)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
}
