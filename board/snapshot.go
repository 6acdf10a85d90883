package board

import "github.com/SvenDH/go-card-board/geom"

// Snapshot is a plain, serializable copy of the board, used for dumps and
// debugging. It holds no references back into the GameState.
type Snapshot struct {
	Player    PlayerSnapshot `yaml:"player" json:"player"`
	Opponent  PlayerSnapshot `yaml:"opponent" json:"opponent"`
	Dragging  string         `yaml:"dragging,omitempty" json:"dragging,omitempty"`
	Targeting string         `yaml:"targeting,omitempty" json:"targeting,omitempty"`
}

type PlayerSnapshot struct {
	Name      string         `yaml:"name" json:"name"`
	Health    int            `yaml:"health" json:"health"`
	Deck      int            `yaml:"deck" json:"deck"`
	Hand      []CardSnapshot `yaml:"hand" json:"hand"`
	Field     []CardSnapshot `yaml:"field" json:"field"`
	Graveyard []CardSnapshot `yaml:"graveyard,omitempty" json:"graveyard,omitempty"`
}

type CardSnapshot struct {
	ID      string     `yaml:"id" json:"id"`
	Name    string     `yaml:"name" json:"name"`
	Cost    string     `yaml:"cost,omitempty" json:"cost,omitempty"`
	Attack  *int       `yaml:"attack,omitempty" json:"attack,omitempty"`
	Health  *int       `yaml:"health,omitempty" json:"health,omitempty"`
	Effects []string   `yaml:"effects,flow" json:"effects"`
	Rest    geom.Point `yaml:"rest" json:"rest"`
}

func (g *GameState) Snapshot() Snapshot {
	s := Snapshot{
		Player:   snapshotPlayer(g.Player),
		Opponent: snapshotPlayer(g.Opponent),
	}
	if ref, ok := g.Dragging(); ok {
		s.Dragging = ref.String()
	}
	if t, ok := g.Targeting(); ok {
		s.Targeting = t.Origin.String()
	}
	return s
}

func snapshotPlayer(p *Player) PlayerSnapshot {
	return PlayerSnapshot{
		Name:      p.Name,
		Health:    p.Health,
		Deck:      len(p.Deck),
		Hand:      snapshotZone(p.Hand),
		Field:     snapshotZone(p.Field),
		Graveyard: snapshotZone(p.Graveyard),
	}
}

func snapshotZone(z Zone) []CardSnapshot {
	out := make([]CardSnapshot, 0, len(z))
	for _, c := range z {
		cs := CardSnapshot{
			ID:   c.ID.String(),
			Name: c.Card.Name(),
			Cost: c.Card.Cost().String(),
			Rest: c.rest,
		}
		if v, ok := c.Card.Attack(); ok {
			cs.Attack = &v
		}
		if v, ok := c.Card.Health(); ok {
			cs.Health = &v
		}
		for _, e := range c.Card.PlayEffects() {
			cs.Effects = append(cs.Effects, e.String())
		}
		out = append(out, cs)
	}
	return out
}
