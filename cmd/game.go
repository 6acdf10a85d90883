/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"go.uber.org/zap"

	"github.com/SvenDH/go-card-board/board"
	"github.com/SvenDH/go-card-board/card"
	"github.com/SvenDH/go-card-board/config"
	"github.com/SvenDH/go-card-board/store"
)

// loadDeck resolves the configured deck: a file, a stored deck, or the
// starter deck, in that order.
func loadDeck(ctx context.Context, c *config.Config, log *zap.Logger) ([]card.Entry, error) {
	parser := card.NewDeckParser(card.DefaultCatalogue())
	switch {
	case c.Game.DeckFile != "":
		body, err := os.ReadFile(c.Game.DeckFile)
		if err != nil {
			return nil, fmt.Errorf("read deck: %w", err)
		}
		log.Info("loading deck file", zap.String("path", c.Game.DeckFile))
		return parser.Parse(c.Game.DeckFile, string(body))
	case c.Game.Deck != "":
		repo, err := store.Open(ctx, c.Store.Path, log)
		if err != nil {
			return nil, err
		}
		defer repo.Close()
		d, err := repo.Load(ctx, c.Game.Deck)
		if err != nil {
			return nil, err
		}
		log.Info("loading stored deck", zap.String("name", d.Name))
		return parser.Parse(d.Name, d.Body)
	}
	return parser.Parse("starter", card.StarterDeck)
}

// newGame deals both players an opening hand from the configured deck.
func newGame(ctx context.Context, c *config.Config, log *zap.Logger) (*board.GameState, error) {
	entries, err := loadDeck(ctx, c, log)
	if err != nil {
		return nil, err
	}
	player := board.NewPlayer(c.Game.Player, card.Expand(entries)...)
	opponent := board.NewPlayer(c.Game.Opponent, card.Expand(entries)...)
	for i, p := range []*board.Player{player, opponent} {
		p.ResetDeck()
		if c.Game.Seed != 0 {
			p.Shuffle(rand.New(rand.NewPCG(c.Game.Seed, uint64(i))))
		}
		for range c.Game.HandSize {
			if !p.DrawCard() {
				break
			}
		}
	}
	log.Debug("game dealt",
		zap.Int("deck", len(player.OriginalDeck)),
		zap.Int("hand", len(player.Hand)),
		zap.Uint64("seed", c.Game.Seed))
	return board.New(player, opponent, c.Board, log), nil
}
