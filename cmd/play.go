/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SvenDH/go-card-board/ui"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the board in a window",
	Long: `Deal a game and open it in a window.

Drag minions from your hand onto the field (the highlighted band).
Spells ask for a target instead of moving. F3 toggles debug info, Esc quits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGame(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		prog := ui.NewProgram(g, cfg.Window.Width, cfg.Window.Height, logger)
		return prog.Run(cfg.Window.Title)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().String("deck", "", "name of a stored deck")
	playCmd.Flags().String("deck-file", "", "path of a deck list")
	playCmd.Flags().Uint64("seed", 0, "shuffle seed (0 keeps deck order)")
	playCmd.Flags().Int("hand", 5, "opening hand size")
}
