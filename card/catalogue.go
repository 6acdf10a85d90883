package card

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCard = errors.New("unknown card")

// Catalogue maps card names to prototypes. Lookups hand out clones so the
// prototypes themselves are never mutated.
type Catalogue struct {
	protos map[string]Card
	order  []string
}

func NewCatalogue(protos ...Card) *Catalogue {
	c := &Catalogue{protos: map[string]Card{}}
	for _, p := range protos {
		c.Register(p)
	}
	return c
}

// DefaultCatalogue holds the stock cards a deck list can refer to by name.
func DefaultCatalogue() *Catalogue {
	return NewCatalogue(
		&LightElemental{Hp: 10},
		BuffCard{},
		&GenericMinion{CardName: "Generic minion", Atk: 5, Hp: 5, Price: Cost{{Red, 3}}},
		DamageSpell{},
	)
}

func (c *Catalogue) Register(proto Card) {
	key := strings.ToLower(proto.Name())
	if _, ok := c.protos[key]; !ok {
		c.order = append(c.order, proto.Name())
	}
	c.protos[key] = proto
}

func (c *Catalogue) Lookup(name string) (Card, error) {
	proto, ok := c.protos[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCard, name)
	}
	return proto.Clone(), nil
}

// Names lists the registered cards in registration order.
func (c *Catalogue) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
