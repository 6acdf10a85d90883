package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/SvenDH/go-card-board/loop"
)

// mouseInput turns ebiten's polled mouse state into loop events.
type mouseInput struct {
	lastX, lastY int
}

// poll returns this frame's mouse events: a motion event when the cursor
// moved, then presses and releases for every button.
func (m *mouseInput) poll() []loop.Msg {
	var events []loop.Msg
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if mx != m.lastX || my != m.lastY {
		events = append(events, loop.MouseEvent{X: x, Y: y, Action: loop.MouseMotion})
		m.lastX, m.lastY = mx, my
	}
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		left := b == ebiten.MouseButtonLeft
		if inpututil.IsMouseButtonJustPressed(b) {
			events = append(events, loop.MouseEvent{X: x, Y: y, Action: loop.MousePress, Left: left})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			events = append(events, loop.MouseEvent{X: x, Y: y, Action: loop.MouseRelease, Left: left})
		}
	}
	return events
}
