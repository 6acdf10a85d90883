package card

import (
	"fmt"
	"strings"
)

// Card is what every card kind can answer about itself. Instances on the
// board own their Card exclusively, so implementations may keep mutable
// state (health) without sharing it.
type Card interface {
	Name() string
	Description() string
	Cost() Cost
	Attack() (int, bool)
	Health() (int, bool)
	// SetHealth reports false for cards without health.
	SetHealth(h int) bool
	PlayEffects() []PlayEffect
	Clone() Card
}

type ResourceType int

const (
	Red ResourceType = iota
	Blue
	White
	Black
)

var resourceTypes = []struct {
	name, symbol string
}{
	Red:   {"red", "R"},
	Blue:  {"blue", "U"},
	White: {"white", "W"},
	Black: {"black", "B"},
}

func (r ResourceType) String() string {
	if r >= 0 && int(r) < len(resourceTypes) {
		return resourceTypes[r].name
	}
	return fmt.Sprintf("resource(%d)", int(r))
}

// Symbol is the single letter used in cost strings. Blue is U, since B is black.
func (r ResourceType) Symbol() string {
	if r >= 0 && int(r) < len(resourceTypes) {
		return resourceTypes[r].symbol
	}
	return "?"
}

// ParseResourceType accepts the full name or the symbol, in any case.
func ParseResourceType(s string) (ResourceType, error) {
	s = strings.TrimSpace(s)
	for r, t := range resourceTypes {
		if strings.EqualFold(s, t.name) || strings.EqualFold(s, t.symbol) {
			return ResourceType(r), nil
		}
	}
	return 0, fmt.Errorf("unknown resource type %q", strings.ToLower(s))
}

type ResourceAmount struct {
	Type   ResourceType
	Amount int
}

// Cost is a multiset of resources. The same type may appear more than once.
type Cost []ResourceAmount

func (c Cost) Total() int {
	n := 0
	for _, r := range c {
		n += r.Amount
	}
	return n
}

// Of sums the amount of a single resource type.
func (c Cost) Of(t ResourceType) int {
	n := 0
	for _, r := range c {
		if r.Type == t {
			n += r.Amount
		}
	}
	return n
}

func (c Cost) Clone() Cost {
	if c == nil {
		return nil
	}
	out := make(Cost, len(c))
	copy(out, c)
	return out
}

func (c Cost) String() string {
	var sb strings.Builder
	for _, r := range c {
		fmt.Fprintf(&sb, "{%s%d}", r.Type.Symbol(), r.Amount)
	}
	return sb.String()
}

type EffectKind int

const (
	SummonMinion EffectKind = iota
	Target
)

func (k EffectKind) String() string {
	switch k {
	case SummonMinion:
		return "summon"
	case Target:
		return "target"
	}
	return fmt.Sprintf("effect(%d)", int(k))
}

// TargetMask says what a targeting effect may be pointed at.
type TargetMask uint8

const (
	TargetSelf TargetMask = 1 << iota
	TargetOpponent
	TargetOwnMinion
	TargetOpponentMinion

	TargetEverything = TargetSelf | TargetOpponent | TargetOwnMinion | TargetOpponentMinion
)

func (m TargetMask) Has(o TargetMask) bool { return m&o == o }

func (m TargetMask) String() string {
	if m == 0 {
		return "none"
	}
	if m == TargetEverything {
		return "everything"
	}
	var parts []string
	for _, f := range []struct {
		mask TargetMask
		name string
	}{
		{TargetSelf, "self"},
		{TargetOpponent, "opponent"},
		{TargetOwnMinion, "own-minion"},
		{TargetOpponentMinion, "opponent-minion"},
	} {
		if m.Has(f.mask) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// PlayEffect is a declared consequence of playing a card from hand.
type PlayEffect struct {
	Kind   EffectKind
	Target TargetMask
}

func (e PlayEffect) String() string {
	if e.Kind == Target {
		return fmt.Sprintf("target(%s)", e.Target)
	}
	return e.Kind.String()
}

var summon = []PlayEffect{{Kind: SummonMinion}}

// Debug renders a card the way log lines refer to it, e.g. "Grunt (5/5)".
func Debug(c Card) string {
	atk, hasAtk := c.Attack()
	hp, hasHp := c.Health()
	if hasAtk && hasHp {
		return fmt.Sprintf("%s (%d/%d)", c.Name(), atk, hp)
	}
	return c.Name()
}
