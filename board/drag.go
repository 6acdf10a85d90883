package board

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/SvenDH/go-card-board/card"
	"github.com/SvenDH/go-card-board/geom"
)

// DropResult says what a mouse release did.
type DropResult int

const (
	// DropNone: nothing was being dragged.
	DropNone DropResult = iota
	// DropAbandoned: the dragged card vanished before the release.
	DropAbandoned
	DropNoDestination
	DropDisallowed
	DropFieldFull
	DropMoved
	// DropRestored: the destination rejected the card and it went back
	// where it came from.
	DropRestored
)

func (r DropResult) String() string {
	switch r {
	case DropNone:
		return "none"
	case DropAbandoned:
		return "abandoned"
	case DropNoDestination:
		return "no-destination"
	case DropDisallowed:
		return "disallowed"
	case DropFieldFull:
		return "field-full"
	case DropMoved:
		return "moved"
	case DropRestored:
		return "restored"
	}
	return fmt.Sprintf("drop(%d)", int(r))
}

// TargetRequest is recorded when a card that needs a target is pressed. It
// asks for a targeting cursor instead of a drag and never moves the card.
type TargetRequest struct {
	Origin ZoneRef
	Mask   card.TargetMask
	From   geom.Point
	Cursor geom.Point
}

type move struct{ from, to Area }

// allowedMoves is the allow-list of zone to zone drops.
var allowedMoves = map[move]bool{
	{PlayerHand, PlayerField}: true,
}

// effectOrigins lists where each kind of play effect can be started from.
var effectOrigins = map[card.EffectKind][]Area{
	card.SummonMinion: {PlayerHand},
	card.Target:       {PlayerHand},
}

// playableFrom returns the first effect of c that may be started from area.
func playableFrom(c card.Card, area Area) (card.PlayEffect, bool) {
	for _, e := range c.PlayEffects() {
		for _, a := range effectOrigins[e.Kind] {
			if a == area {
				return e, true
			}
		}
	}
	return card.PlayEffect{}, false
}

// Dragging returns the reference of the card being dragged.
func (g *GameState) Dragging() (ZoneRef, bool) {
	if g.dragging == nil {
		return ZoneRef{}, false
	}
	return *g.dragging, true
}

// Targeting returns the pending target request, if a targeting card is held.
func (g *GameState) Targeting() (TargetRequest, bool) {
	if g.targeting == nil {
		return TargetRequest{}, false
	}
	return *g.targeting, true
}

// hitTest finds the topmost card under p in the player's hand, then field.
// Later cards are drawn over earlier ones, so each zone is searched back to front.
func (g *GameState) hitTest(p geom.Point) (ZoneRef, *CardInstance, bool) {
	size := g.cfg.CardSize()
	for _, a := range []Area{PlayerHand, PlayerField} {
		z := *g.zone(a)
		for i := len(z) - 1; i >= 0; i-- {
			if z[i].Contains(p, size) {
				return ZoneRef{Area: a, Index: i}, z[i], true
			}
		}
	}
	return ZoneRef{}, nil, false
}

func (g *GameState) MousePressedAt(mouse geom.Point) {
	if g.dragging != nil || g.targeting != nil {
		return
	}
	ref, inst, ok := g.hitTest(mouse)
	if !ok {
		return
	}
	effect, ok := playableFrom(inst.Card, ref.Area)
	if !ok {
		g.log.Debug("card cannot be played from here",
			zap.Stringer("ref", ref), zap.String("card", card.Debug(inst.Card)))
		return
	}
	switch effect.Kind {
	case card.SummonMinion:
		inst.DragStart(mouse)
		g.dragging = &ref
		g.log.Debug("drag started", zap.Stringer("ref", ref), zap.String("card", card.Debug(inst.Card)))
	case card.Target:
		g.targeting = &TargetRequest{Origin: ref, Mask: effect.Target, From: inst.Display(), Cursor: mouse}
		g.log.Debug("target requested",
			zap.Stringer("ref", ref), zap.String("card", card.Debug(inst.Card)), zap.Stringer("mask", effect.Target))
	}
}

func (g *GameState) MouseMovedTo(mouse geom.Point) {
	if g.targeting != nil {
		g.targeting.Cursor = mouse
	}
	if g.dragging == nil {
		return
	}
	if inst, ok := g.Resolve(*g.dragging); ok {
		inst.MouseMoved(mouse)
	}
}

// MouseReleased ends the drag and, if the card was dropped on a zone it may
// move to, moves it there and lays out the zones involved. A card that does
// not move stays where it was dropped and drifts back to its old slot.
func (g *GameState) MouseReleased(screen geom.Point) DropResult {
	g.targeting = nil
	if g.dragging == nil {
		return DropNone
	}
	from := *g.dragging
	g.dragging = nil

	inst, ok := g.Resolve(from)
	if !ok {
		g.log.Debug("dragged card is gone", zap.Stringer("ref", from))
		return DropAbandoned
	}
	inst.DragEnd()
	drop := inst.Display()
	log := g.log.With(zap.Stringer("from", from), zap.String("card", card.Debug(inst.Card)), zap.Stringer("at", drop))

	to, ok := g.destination(drop, screen)
	if !ok {
		log.Debug("dropped outside any zone")
		return DropNoDestination
	}
	if !allowedMoves[move{from.Area, to}] {
		log.Info("move not allowed", zap.Stringer("to", to))
		return DropDisallowed
	}
	if to == PlayerField && len(g.Player.Field) >= g.cfg.FieldCapacity {
		log.Info("field is full", zap.Int("capacity", g.cfg.FieldCapacity))
		return DropFieldFull
	}
	return g.relocate(from, to, drop.X, screen, log)
}

// destination classifies a drop point into the area it lands on.
func (g *GameState) destination(p, screen geom.Point) (Area, bool) {
	if screen.Y <= 0 {
		return 0, false
	}
	f := p.Y / screen.Y
	if f >= g.cfg.FieldBandMin && f < g.cfg.FieldBandMax {
		return PlayerField, true
	}
	return 0, false
}

// slotFor returns the index in z a card dropped at x slides into: before the
// first card resting right of x, or at the end.
func slotFor(z Zone, x float64) int {
	for i, c := range z {
		if c.rest.X > x {
			return i
		}
	}
	return len(z)
}

func (g *GameState) relocate(from ZoneRef, to Area, x float64, screen geom.Point, log *zap.Logger) DropResult {
	inst, ok := g.Take(from)
	if !ok {
		return DropAbandoned
	}
	// Derive the slot after the take so it is measured against the zone as it is now.
	dest := ZoneRef{Area: to, Index: slotFor(*g.zone(to), x)}
	if !g.Insert(inst, dest) {
		if !g.Insert(inst, from) {
			panic(fmt.Sprintf("board: cannot restore %s to %s", inst.ID, from))
		}
		log.Error("destination rejected card, restored", zap.Stringer("to", dest))
		g.layoutArea(from.Area, screen)
		return DropRestored
	}
	g.layoutArea(from.Area, screen)
	g.layoutArea(to, screen)
	log.Debug("card moved", zap.Stringer("to", dest))
	return DropMoved
}
