package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightescape/internal/games/escape"
	"github.com/vovakirdan/nightescape/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in a desktop window.

Controls are the same as in the terminal, with Shift held for sprint.
Esc or Q closes the window.

Examples:
  nightescape window
  nightescape window --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 960x540 field")
}

func runWindow(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	return window.Run(escape.New(), window.Options{
		Store:    s.store,
		Logger:   s.logger,
		Watcher:  s.watcher,
		TickRate: flagFPS,
		Scale:    flagScale,
	})
}
