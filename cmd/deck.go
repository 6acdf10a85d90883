/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SvenDH/go-card-board/card"
	"github.com/SvenDH/go-card-board/store"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// deckCmd represents the deck command
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Check and manage deck lists",
	Long: `Deck lists are plain text, one entry per line:

  15x "Light elemental"
  2 minion "Ogre" 4/3 {red 2}{white 1}

Stored decks live in the database given by --db.`,
}

var deckCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse a deck list and print its cards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := parseDeckFile(args[0])
		if err != nil {
			return err
		}
		printDeck(cmd.OutOrStdout(), entries)
		return nil
	},
}

var deckSaveCmd = &cobra.Command{
	Use:   "save <name> <file>",
	Short: "Store a deck list under a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read deck: %w", err)
		}
		if _, err := card.NewDeckParser(nil).Parse(args[1], string(body)); err != nil {
			return err
		}
		return withRepo(cmd.Context(), func(repo *store.Repository) error {
			if err := repo.Save(cmd.Context(), args[0], string(body)); err != nil {
				return err
			}
			logger.Info("deck saved", zap.String("name", args[0]))
			return nil
		})
	},
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored decks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(cmd.Context(), func(repo *store.Repository) error {
			decks, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}
			parser := card.NewDeckParser(nil)
			t := newTable("NAME", "CARDS", "UPDATED")
			for _, d := range decks {
				size := "invalid"
				if entries, err := parser.Parse(d.Name, d.Body); err == nil {
					size = strconv.Itoa(len(card.Expand(entries)))
				}
				t.Row(d.Name, size, d.UpdatedAt.Format("2006-01-02 15:04"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		})
	},
}

var deckShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the cards of a stored deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(cmd.Context(), func(repo *store.Repository) error {
			d, err := repo.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			entries, err := card.NewDeckParser(nil).Parse(d.Name, d.Body)
			if err != nil {
				return err
			}
			printDeck(cmd.OutOrStdout(), entries)
			return nil
		})
	},
}

var deckRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a stored deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(cmd.Context(), func(repo *store.Repository) error {
			return repo.Delete(cmd.Context(), args[0])
		})
	},
}

var deckCardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List the cards a deck list can name",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cat := card.DefaultCatalogue()
		t := newTable("CARD", "COST", "STATS", "PLAY")
		for _, name := range cat.Names() {
			c, _ := cat.Lookup(name)
			t.Row(cardRow(c)...)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
	},
}

func init() {
	rootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckCheckCmd, deckSaveCmd, deckListCmd, deckShowCmd, deckRmCmd, deckCardsCmd)
}

func withRepo(ctx context.Context, fn func(*store.Repository) error) error {
	repo, err := store.Open(ctx, cfg.Store.Path, logger)
	if err != nil {
		return err
	}
	defer repo.Close()
	return fn(repo)
}

func parseDeckFile(path string) ([]card.Entry, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	return card.NewDeckParser(nil).Parse(path, string(body))
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func cardRow(c card.Card) []string {
	stats := "-"
	if atk, ok := c.Attack(); ok {
		hp, _ := c.Health()
		stats = fmt.Sprintf("%d/%d", atk, hp)
	}
	play := ""
	for i, e := range c.PlayEffects() {
		if i > 0 {
			play += " "
		}
		play += e.String()
	}
	return []string{c.Name(), c.Cost().String(), stats, play}
}

func printDeck(w io.Writer, entries []card.Entry) {
	t := newTable("COUNT", "CARD", "COST", "STATS", "PLAY")
	total := 0
	for _, e := range entries {
		total += e.Count
		t.Row(append([]string{strconv.Itoa(e.Count)}, cardRow(e.Card)...)...)
	}
	fmt.Fprintln(w, t)
	fmt.Fprintf(w, "%d cards\n", total)
}
