package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightescape/internal/games/escape"
	"github.com/vovakirdan/nightescape/internal/platform/tui"
	"github.com/vovakirdan/nightescape/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu with play and high scores",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Esc during a run returns to the menu.

Examples:
  nightescape menu
  nightescape menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a movement key stays held after a press")
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := terminalConfig()
	game, err := registry.Create(escape.ID)
	if err != nil {
		return err
	}

	for {
		result, err := tui.RunMenu(game.ID(), game.Title(), s.store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.MenuChoicePlay:
			played, err := tui.Run(game, cfg, s.tuiOptions())
			if err != nil {
				return err
			}
			if !played.Back {
				return nil
			}

		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(game.ID(), game.Title(), s.store, cfg.ScreenW, cfg.ScreenH, cfg.TickRate)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
