package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/SvenDH/go-card-board/board"
	"github.com/SvenDH/go-card-board/geom"
	"github.com/SvenDH/go-card-board/loop"
)

var (
	background  = color.RGBA{0x10, 0x20, 0x60, 0xff}
	bandColor   = color.RGBA{0x20, 0x40, 0x90, 0xff}
	targetColor = color.RGBA{0xff, 0x50, 0x40, 0xff}
)

// Program runs a board.GameState inside an ebiten window. It polls input,
// hands it to a loop.Driver and draws every zone.
type Program struct {
	Driver    *loop.Driver
	ShowDebug bool

	faces         *FaceCache
	log           *zap.Logger
	mouse         mouseInput
	width, height int
	lastTick      time.Time
	pending       []loop.Msg
}

func NewProgram(g *board.GameState, width, height int, logger *zap.Logger) *Program {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Program{
		Driver: loop.NewDriver(g, geom.Pt(float64(width), float64(height)), logger),
		faces:  NewFaceCache(g.Config().CardSize()),
		log:    logger,
		width:  width,
		height: height,
	}
}

func (p *Program) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		p.ShowDebug = !p.ShowDebug
	}
	events := p.pending
	p.pending = nil

	events = append(events, p.mouse.poll()...)

	now := time.Now()
	var dt float64
	if !p.lastTick.IsZero() {
		dt = float64(now.Sub(p.lastTick)) / float64(time.Millisecond)
	}
	p.lastTick = now

	p.Driver.Step(events, dt)
	return nil
}

func (p *Program) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g := p.Driver.Game
	cfg := g.Config()

	// The field drop band.
	h := float32(p.height)
	vector.DrawFilledRect(screen, 0, h*float32(cfg.FieldBandMin), float32(p.width),
		h*float32(cfg.FieldBandMax-cfg.FieldBandMin), bandColor, false)

	dragRef, dragging := g.Dragging()
	for ref, c := range g.Cards() {
		if dragging && ref == dragRef {
			continue
		}
		p.drawCard(screen, c)
	}
	// The dragged card goes on top of everything else.
	if dragging {
		if c, ok := g.Resolve(dragRef); ok {
			p.drawCard(screen, c)
		}
	}
	if t, ok := g.Targeting(); ok {
		vector.StrokeLine(screen, float32(t.From.X), float32(t.From.Y),
			float32(t.Cursor.X), float32(t.Cursor.Y), 4, targetColor, true)
	}

	if p.ShowDebug {
		msg := fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f\nhand %d field %d deck %d\nlast drop: %s",
			ebiten.ActualTPS(), ebiten.ActualFPS(),
			len(g.Player.Hand), len(g.Player.Field), len(g.Player.Deck), p.Driver.LastDrop)
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (p *Program) drawCard(screen *ebiten.Image, c *board.CardInstance) {
	face := p.faces.Face(c)
	topLeft := c.Display().Sub(p.faces.Size().Div(2))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(topLeft.X, topLeft.Y)
	screen.DrawImage(face, op)
}

// Layout follows the window size. A change is queued as a resize event for
// the next Update so it is applied in order with the rest of the input.
func (p *Program) Layout(outsideW, outsideH int) (int, int) {
	if outsideW != p.width || outsideH != p.height {
		p.width, p.height = outsideW, outsideH
		p.pending = append(p.pending, loop.Resize{W: float64(outsideW), H: float64(outsideH)})
		p.log.Debug("window resized", zap.Int("width", outsideW), zap.Int("height", outsideH))
	}
	return p.width, p.height
}

// Run opens the window and blocks until it is closed.
func (p *Program) Run(title string) error {
	ebiten.SetWindowSize(p.width, p.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(p); err != nil && err != ebiten.Termination {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
