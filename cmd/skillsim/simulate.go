package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/udisondev/skillgrowth/internal/sim"
)

func simulateCmd(a *app) *cobra.Command {
	var opts sim.Options

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Train random characters in memory and print their skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := a.cfg.ResolveSeed()
			if err != nil {
				return err
			}
			opts.Seed = seed

			slog.Info("simulation starting",
				"characters", opts.Characters,
				"turns", opts.Turns,
				"level", opts.Level,
				"seed", seed)

			chars, err := a.runner.Run(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("simulating: %w", err)
			}
			return sim.WriteReport(os.Stdout, a.catalog, a.cfg.Locale, chars)
		},
	}

	cmd.Flags().IntVarP(&opts.Characters, "characters", "n", 4, "number of characters")
	cmd.Flags().IntVarP(&opts.Turns, "turns", "t", 500, "training turns per character")
	cmd.Flags().IntVarP(&opts.Level, "level", "l", 1, "starting character level")
	cmd.Flags().BoolVar(&opts.Player, "player", false, "make the first character the player")

	return cmd
}
