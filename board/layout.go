package board

import "github.com/SvenDH/go-card-board/geom"

// SlotPositions returns the rest positions of n cards centered horizontally
// on the screen at height anchorY, spacing apart.
func SlotPositions(n int, anchorY, spacing float64, screen geom.Point) []geom.Point {
	out := make([]geom.Point, n)
	x := screen.X/2 - (float64(n)*spacing-spacing)/2
	for i := range out {
		out[i] = geom.Pt(x, anchorY)
		x += spacing
	}
	return out
}

// LayoutZone writes the rest position of every card in z. Nothing else
// writes rest positions.
func LayoutZone(z Zone, anchorY, spacing float64, screen geom.Point) {
	for i, p := range SlotPositions(len(z), anchorY, spacing, screen) {
		z[i].rest = p
	}
}

// anchor returns the row height and spacing of an area. The opponent's rows
// mirror the player's across the middle of the screen.
func (g *GameState) anchor(a Area, screen geom.Point) (y, spacing float64) {
	h := g.cfg.CardHeight
	switch a {
	case PlayerHand:
		return screen.Y - h/2, g.cfg.HandSpacing
	case PlayerField:
		return (screen.Y + h) / 2, g.cfg.FieldSpacing
	case OpponentHand:
		return h / 2, g.cfg.HandSpacing
	default:
		return (screen.Y - h) / 2, g.cfg.FieldSpacing
	}
}

func (g *GameState) layoutArea(a Area, screen geom.Point) {
	y, spacing := g.anchor(a, screen)
	LayoutZone(*g.zone(a), y, spacing, screen)
}

// UpdateCardOrigins recomputes every rest position. Call it after the zones
// change and whenever the screen is resized.
func (g *GameState) UpdateCardOrigins(screen geom.Point) {
	for _, a := range Areas {
		g.layoutArea(a, screen)
	}
}
