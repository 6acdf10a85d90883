package board

import (
	"math"

	"github.com/oklog/ulid/v2"

	"github.com/SvenDH/go-card-board/card"
	"github.com/SvenDH/go-card-board/geom"
)

// CardInstance is a card sitting in a zone. Positions are card centers.
type CardInstance struct {
	ID   ulid.ULID
	Card card.Card

	rest       geom.Point
	display    geom.Point
	dragging   bool
	dragOffset geom.Point
}

func NewCardInstance(c card.Card) *CardInstance {
	return &CardInstance{ID: ulid.Make(), Card: c}
}

// Rest is the slot position the zone layout assigned.
func (c *CardInstance) Rest() geom.Point { return c.rest }

// Display is where the card is drawn this frame.
func (c *CardInstance) Display() geom.Point { return c.display }

func (c *CardInstance) Dragging() bool { return c.dragging }

// Contains hit-tests p against the card's box centered on its display position.
func (c *CardInstance) Contains(p, size geom.Point) bool {
	return geom.CenteredRect(c.display, size).Contains(p)
}

func (c *CardInstance) DragStart(mouse geom.Point) {
	c.dragging = true
	c.dragOffset = c.display.Sub(mouse)
}

func (c *CardInstance) MouseMoved(mouse geom.Point) {
	c.display = mouse.Add(c.dragOffset)
}

func (c *CardInstance) DragEnd() { c.dragging = false }

// Update pulls the card toward its rest position. The approach is
// exponential in time, so it never overshoots however large dt gets.
func (c *CardInstance) Update(dt float64, cfg Config) {
	if c.dragging || dt <= 0 {
		return
	}
	if cfg.MaxFrameDelta > 0 && dt > cfg.MaxFrameDelta {
		dt = cfg.MaxFrameDelta
	}
	alpha := 1 - math.Exp(-dt*cfg.BounceFactor)
	c.display = c.display.Add(c.rest.Sub(c.display).Scale(alpha))
}
