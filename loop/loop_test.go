package loop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/SvenDH/go-card-board/board"
	"github.com/SvenDH/go-card-board/card"
	"github.com/SvenDH/go-card-board/geom"
)

func newDriver(t *testing.T, hand int) *Driver {
	t.Helper()
	var deck []card.Card
	for range hand {
		deck = append(deck, &card.GenericMinion{CardName: "Grunt", Atk: 1, Hp: 1})
	}
	p := board.NewPlayer("Trangar", deck...)
	p.ResetDeck()
	for range hand {
		require.True(t, p.DrawCard())
	}
	g := board.New(p, board.NewPlayer("ubsan"), board.DefaultConfig(), zaptest.NewLogger(t))
	d := NewDriver(g, geom.Pt(1280, 960), zaptest.NewLogger(t))
	// Let the freshly dealt cards settle onto their slots.
	for range 200 {
		d.Step(nil, 100)
	}
	return d
}

func TestFrameAppliesEventsBeforeTick(t *testing.T) {
	d := newDriver(t, 5)
	c := d.Game.Player.Hand[2]
	rest := c.Rest()

	d.Step([]Msg{
		MouseEvent{X: rest.X, Y: rest.Y, Action: MouseMotion},
		MouseEvent{Action: MousePress, Left: true},
		MouseEvent{X: 640, Y: 580, Action: MouseMotion},
		MouseEvent{Action: MouseRelease, Left: true},
	}, 16)

	assert.Equal(t, board.DropMoved, d.LastDrop)
	assert.Len(t, d.Game.Player.Hand, 4)
	require.Len(t, d.Game.Player.Field, 1)
	assert.Same(t, c, d.Game.Player.Field[0])
	// The tick ran after the drop, so the card already started toward its
	// new slot, which here is exactly where it was dropped.
	assert.InDelta(t, 640, c.Display().X, 1e-6)
}

func TestRightClickDoesNotDrag(t *testing.T) {
	d := newDriver(t, 1)
	rest := d.Game.Player.Hand[0].Rest()

	d.Step([]Msg{
		MouseEvent{X: rest.X, Y: rest.Y, Action: MouseMotion},
		MouseEvent{Action: MousePress},
	}, 16)
	_, dragging := d.Game.Dragging()
	assert.False(t, dragging)
	assert.Equal(t, rest, d.Mouse())
}

func TestOtherButtonReleaseKeepsDrag(t *testing.T) {
	d := newDriver(t, 1)
	c := d.Game.Player.Hand[0]
	rest := c.Rest()

	d.Step([]Msg{
		MouseEvent{X: rest.X, Y: rest.Y, Action: MouseMotion},
		MouseEvent{Action: MousePress, Left: true},
		MouseEvent{X: 640, Y: 580, Action: MouseMotion},
		MouseEvent{Action: MouseRelease},
	}, 16)
	ref, dragging := d.Game.Dragging()
	require.True(t, dragging)
	assert.Equal(t, board.ZoneRef{Area: board.PlayerHand, Index: 0}, ref)
	assert.Equal(t, board.DropNone, d.LastDrop)
	assert.Empty(t, d.Game.Player.Field)

	d.Step([]Msg{MouseEvent{Action: MouseRelease, Left: true}}, 16)
	assert.Equal(t, board.DropMoved, d.LastDrop)
	require.Len(t, d.Game.Player.Field, 1)
	assert.Same(t, c, d.Game.Player.Field[0])
}

func TestResizeRelaysOut(t *testing.T) {
	d := newDriver(t, 1)

	d.Apply(Resize{W: 800, H: 600})
	assert.Equal(t, geom.Pt(800, 600), d.Screen)
	assert.Equal(t, geom.Pt(400, 500), d.Game.Player.Hand[0].Rest())
}
