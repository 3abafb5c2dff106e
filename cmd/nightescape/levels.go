package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightescape/internal/config"
	"github.com/vovakirdan/nightescape/internal/games/escape/sim"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long:  `Shows every level in play order with its pickups and enemies.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadEscape(flagConfig)
	if err != nil {
		return err
	}

	levels := sim.BuiltinLevels(cfg.Field.Width, cfg.Field.Height)
	if err := sim.ValidateCatalog(levels); err != nil {
		return err
	}

	fmt.Printf("Levels (%gx%g field):\n", cfg.Field.Width, cfg.Field.Height)
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Printf("  %-2s  %-*s  %9s  %5s  %7s\n", "#", maxNameLen, "Name", "Platforms", "Notes", "Enemies")
	fmt.Printf("  %-2s  %-*s  %9s  %5s  %7s\n", "-", maxNameLen, "----", "---------", "-----", "-------")
	for i, l := range levels {
		fmt.Printf("  %-2d  %-*s  %9d  %5d  %7d\n", i+1, maxNameLen, l.Name, len(l.Platforms), len(l.Notes), len(l.Enemies))
	}

	fmt.Println()
	fmt.Println("Run 'nightescape play' to start at level 1.")
	return nil
}
