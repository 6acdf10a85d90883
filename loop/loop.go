// Package loop turns a frame's worth of input events into calls on a
// board.GameState. It knows nothing about windows; the ui package feeds it.
package loop

import (
	"go.uber.org/zap"

	"github.com/SvenDH/go-card-board/board"
	"github.com/SvenDH/go-card-board/geom"
)

type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
)

type Msg interface{}

type MouseEvent struct {
	X, Y   float64
	Action MouseAction
	// Left is set for the primary button. Other buttons neither start nor
	// end a drag.
	Left bool
}

type Resize struct {
	W, H float64
}

// Driver feeds input into a GameState, one frame at a time.
type Driver struct {
	Game   *board.GameState
	Screen geom.Point
	// LastDrop is the outcome of the most recent release.
	LastDrop board.DropResult

	mouse geom.Point
	log   *zap.Logger
}

func NewDriver(g *board.GameState, screen geom.Point, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	g.UpdateCardOrigins(screen)
	return &Driver{Game: g, Screen: screen, log: logger}
}

func (d *Driver) Mouse() geom.Point { return d.mouse }

// Apply handles a single event.
func (d *Driver) Apply(msg Msg) {
	switch m := msg.(type) {
	case MouseEvent:
		switch m.Action {
		case MouseMotion:
			d.mouse = geom.Pt(m.X, m.Y)
			d.Game.MouseMovedTo(d.mouse)
		case MousePress:
			if m.Left {
				d.Game.MousePressedAt(d.mouse)
			}
		case MouseRelease:
			if !m.Left {
				return
			}
			d.LastDrop = d.Game.MouseReleased(d.Screen)
			if d.LastDrop != board.DropNone {
				d.log.Debug("mouse released", zap.Stringer("result", d.LastDrop))
			}
		}
	case Resize:
		d.Screen = geom.Pt(m.W, m.H)
		d.Game.UpdateCardOrigins(d.Screen)
	}
}

// Step runs one frame: every queued event, in order, then the animation tick
// of dt milliseconds.
func (d *Driver) Step(events []Msg, dt float64) {
	for _, ev := range events {
		d.Apply(ev)
	}
	d.Game.Update(dt)
}
