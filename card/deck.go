package card

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Deck lists look like:
//
//	# starter deck
//	15x "Light elemental"
//	15x minion "Generic minion" 5/5 {red 3}
//	15 "Damage spell card"
type deckFile struct {
	Entries []*deckEntry `@@*`
}

type deckEntry struct {
	Pos    lexer.Position
	Count  int         `@Int ("x")?`
	Minion *minionSpec `( "minion" @@`
	Name   string      `| @String )`
}

type minionSpec struct {
	Name   string      `@String`
	Attack int         `@Int "/"`
	Health int         `@Int`
	Costs  []*costSpec `@@*`
}

type costSpec struct {
	Pos      lexer.Position
	Resource string `"{" @Ident`
	Amount   int    `@Int "}"`
}

// MaxDeckSize bounds the total number of cards a deck list may expand to.
const MaxDeckSize = 120

// Entry is one line of a deck list: Count copies of Card.
type Entry struct {
	Count int
	Card  Card
}

type DeckParser struct {
	parser    *participle.Parser[deckFile]
	catalogue *Catalogue
}

func NewDeckParser(cat *Catalogue) *DeckParser {
	if cat == nil {
		cat = DefaultCatalogue()
	}
	parser := participle.MustBuild[deckFile](
		participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
			{"comment", `#[^\n]*`},
			{"whitespace", `[\s]+`},
			{"String", `"[^"]*"`},
			{"Int", `\d+`},
			{"Ident", `[a-zA-Z][\w-]*`},
			{"Punct", `[{}/]`},
		})),
		participle.Unquote("String"),
	)
	return &DeckParser{parser: parser, catalogue: cat}
}

// Parse reads a deck list. filename only shows up in error positions.
func (p *DeckParser) Parse(filename, txt string) ([]Entry, error) {
	file, err := p.parser.ParseString(filename, txt)
	if err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	entries := make([]Entry, 0, len(file.Entries))
	total := 0
	for _, e := range file.Entries {
		if e.Count <= 0 {
			return nil, fmt.Errorf("%s: card count must be positive", e.Pos)
		}
		if e.Count > MaxDeckSize-total {
			return nil, fmt.Errorf("%s: deck exceeds %d cards", e.Pos, MaxDeckSize)
		}
		total += e.Count
		var c Card
		if e.Minion != nil {
			c, err = e.Minion.card()
		} else {
			c, err = p.catalogue.Lookup(e.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Pos, err)
		}
		entries = append(entries, Entry{Count: e.Count, Card: c})
	}
	return entries, nil
}

func (m *minionSpec) card() (Card, error) {
	cost := make(Cost, 0, len(m.Costs))
	for _, c := range m.Costs {
		t, err := ParseResourceType(c.Resource)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Pos, err)
		}
		cost = append(cost, ResourceAmount{Type: t, Amount: c.Amount})
	}
	return &GenericMinion{CardName: m.Name, Atk: m.Attack, Hp: m.Health, Price: cost}, nil
}

// Expand turns a deck list into one independent card per copy.
func Expand(entries []Entry) []Card {
	var out []Card
	for _, e := range entries {
		for range e.Count {
			out = append(out, e.Card.Clone())
		}
	}
	return out
}

// StarterDeck is the default 60 card deck: 15 of each stock card.
const StarterDeck = `# 15 of each stock card
15x "Light elemental"
15x "Buff card"
15x "Generic minion"
15x "Damage spell card"
`
