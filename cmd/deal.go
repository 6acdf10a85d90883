/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SvenDH/go-card-board/geom"
)

var dealPlay int

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal a game and print the board as YAML",
	Long: `Deal a game without opening a window and print a snapshot of the
board, laid out for the configured window size.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGame(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		for range dealPlay {
			if !g.Player.DrawAndPlayCard() {
				break
			}
		}
		g.UpdateCardOrigins(geom.Pt(float64(cfg.Window.Width), float64(cfg.Window.Height)))

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(g.Snapshot()); err != nil {
			return fmt.Errorf("encode board: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(dealCmd)

	dealCmd.Flags().String("deck", "", "name of a stored deck")
	dealCmd.Flags().String("deck-file", "", "path of a deck list")
	dealCmd.Flags().Uint64("seed", 0, "shuffle seed (0 keeps deck order)")
	dealCmd.Flags().Int("hand", 5, "opening hand size")
	dealCmd.Flags().IntVar(&dealPlay, "play", 0, "cards to put straight onto the field")
}
