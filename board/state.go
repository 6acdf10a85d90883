package board

import (
	"iter"

	"go.uber.org/zap"
)

// GameState owns both players and the drag in progress.
//
// It is not safe for concurrent use. A ZoneRef stays valid only while no
// structural change happens between resolving it and using it, so every
// mutating call has to come from the same goroutine (the game loop).
type GameState struct {
	Player   *Player
	Opponent *Player

	cfg       Config
	log       *zap.Logger
	dragging  *ZoneRef
	targeting *TargetRequest
}

func New(player, opponent *Player, cfg Config, logger *zap.Logger) *GameState {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameState{
		Player:   player,
		Opponent: opponent,
		cfg:      cfg,
		log:      logger,
	}
}

func (g *GameState) Config() Config { return g.cfg }

func (g *GameState) zone(a Area) *Zone {
	switch a {
	case PlayerHand:
		return &g.Player.Hand
	case PlayerField:
		return &g.Player.Field
	case OpponentHand:
		return &g.Opponent.Hand
	case OpponentField:
		return &g.Opponent.Field
	}
	return nil
}

// Zone returns a read-only view of an area.
func (g *GameState) Zone(a Area) Zone {
	if z := g.zone(a); z != nil {
		return *z
	}
	return nil
}

// Resolve looks up the card a reference names. A miss means the card is no
// longer there; it is not an error.
func (g *GameState) Resolve(ref ZoneRef) (*CardInstance, bool) {
	z := g.zone(ref.Area)
	if z == nil {
		return nil, false
	}
	return z.Get(ref.Index)
}

// Take removes the referenced card. Any reference into the same zone with a
// higher index is stale afterwards.
func (g *GameState) Take(ref ZoneRef) (*CardInstance, bool) {
	z := g.zone(ref.Area)
	if z == nil {
		return nil, false
	}
	return z.TryRemove(ref.Index)
}

// Insert places inst at ref. It reports false, and changes nothing, when
// ref.Index is past the end of the zone or inst is already on the board.
func (g *GameState) Insert(inst *CardInstance, ref ZoneRef) bool {
	z := g.zone(ref.Area)
	if z == nil || inst == nil || g.onBoard(inst) {
		return false
	}
	return z.PushOrInsert(ref.Index, inst)
}

// onBoard reports whether inst, or another instance with its ID, sits in any
// zone or graveyard.
func (g *GameState) onBoard(inst *CardInstance) bool {
	for _, c := range g.Cards() {
		if c == inst || c.ID == inst.ID {
			return true
		}
	}
	for _, p := range []*Player{g.Player, g.Opponent} {
		for _, c := range p.Graveyard {
			if c == inst || c.ID == inst.ID {
				return true
			}
		}
	}
	return false
}

// Cards walks the four addressable zones in Areas order. The zones must not
// be changed structurally while iterating.
func (g *GameState) Cards() iter.Seq2[ZoneRef, *CardInstance] {
	return func(yield func(ZoneRef, *CardInstance) bool) {
		for _, a := range Areas {
			for i, c := range *g.zone(a) {
				if !yield(ZoneRef{Area: a, Index: i}, c) {
					return
				}
			}
		}
	}
}

// Update advances every card's return-to-rest animation by dt milliseconds.
func (g *GameState) Update(dt float64) {
	for _, c := range g.Cards() {
		c.Update(dt, g.cfg)
	}
}
