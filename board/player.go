package board

import (
	"math/rand/v2"

	"github.com/SvenDH/go-card-board/card"
)

const StartingHealth = 100

type Player struct {
	Name      string
	Health    int
	Resources card.Cost

	// OriginalDeck is the template the game started with. It is never
	// mutated after setup.
	OriginalDeck []card.Card
	// Deck holds the cards not yet drawn, top first.
	Deck []card.Card

	Hand      Zone
	Field     Zone
	Graveyard Zone
}

func NewPlayer(name string, deck ...card.Card) *Player {
	return &Player{
		Name:         name,
		Health:       StartingHealth,
		OriginalDeck: deck,
	}
}

// ResetDeck clears the board state and refills the deck from the original.
func (p *Player) ResetDeck() {
	p.Deck = make([]card.Card, 0, len(p.OriginalDeck))
	p.Hand = nil
	p.Field = nil
	p.Graveyard = nil
	for _, c := range p.OriginalDeck {
		p.Deck = append(p.Deck, c.Clone())
	}
}

func (p *Player) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(p.Deck), func(i, j int) {
		p.Deck[i], p.Deck[j] = p.Deck[j], p.Deck[i]
	})
}

// DrawCard moves the top card of the deck into the hand.
func (p *Player) DrawCard() bool {
	c, ok := p.pop()
	if ok {
		p.Hand = append(p.Hand, NewCardInstance(c))
	}
	return ok
}

// DrawAndPlayCard draws and puts the card straight onto the field.
func (p *Player) DrawAndPlayCard() bool {
	c, ok := p.pop()
	if ok {
		p.Field = append(p.Field, NewCardInstance(c))
	}
	return ok
}

func (p *Player) pop() (card.Card, bool) {
	if len(p.Deck) == 0 {
		return nil, false
	}
	c := p.Deck[0]
	p.Deck = p.Deck[1:]
	return c, true
}
