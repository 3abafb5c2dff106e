package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightescape/internal/games/escape"
	"github.com/vovakirdan/nightescape/internal/platform/tui"
	"github.com/vovakirdan/nightescape/internal/registry"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Left/Right, A/D        - Move
  Shift+Left/Right       - Sprint (noisy)
  Space/Up/W             - Jump (noisy)
  Enter                  - Start, or play again after a run ends
  R                      - Back to the title screen
  Y                      - Reset and start immediately
  Esc                    - Leave
  Q/Ctrl+C               - Quit

Terminals only report key presses, so movement stays held for a few
ticks after each press (see --hold). The window command has exact
held keys.

Examples:
  nightescape play
  nightescape play --fps 30
  nightescape play --config ./escape.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a movement key stays held after a press")
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	game, err := registry.Create(escape.ID)
	if err != nil {
		return err
	}

	_, err = tui.Run(game, terminalConfig(), s.tuiOptions())
	return err
}

func (s *session) tuiOptions() tui.Options {
	return tui.Options{
		Store:     s.store,
		Logger:    s.logger,
		Watcher:   s.watcher,
		HoldTicks: flagHoldTicks,
	}
}
