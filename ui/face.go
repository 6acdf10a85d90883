package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oklog/ulid/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/SvenDH/go-card-board/board"
	"github.com/SvenDH/go-card-board/card"
	"github.com/SvenDH/go-card-board/geom"
)

var (
	minionColor = color.RGBA{0xe8, 0xdc, 0xc0, 0xff}
	spellColor  = color.RGBA{0xc8, 0xd8, 0xf0, 0xff}
	borderColor = color.RGBA{0x30, 0x28, 0x20, 0xff}
	inkColor    = color.Black
)

// FaceCache renders each card instance's face once, the first time it is
// drawn. Faces are never re-rendered, so later health changes do not show.
type FaceCache struct {
	size  geom.Point
	faces map[ulid.ULID]*ebiten.Image
}

func NewFaceCache(size geom.Point) *FaceCache {
	return &FaceCache{size: size, faces: map[ulid.ULID]*ebiten.Image{}}
}

func (fc *FaceCache) Size() geom.Point { return fc.size }

func (fc *FaceCache) Face(c *board.CardInstance) *ebiten.Image {
	if img, ok := fc.faces[c.ID]; ok {
		return img
	}
	img := renderFace(c.Card, int(fc.size.X), int(fc.size.Y))
	fc.faces[c.ID] = img
	return img
}

func renderFace(c card.Card, w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	bg := minionColor
	if _, ok := c.Attack(); !ok {
		bg = spellColor
	}
	img.Fill(bg)
	vector.StrokeRect(img, 1, 1, float32(w-2), float32(h-2), 2, borderColor, false)

	face := basicfont.Face7x13
	text.Draw(img, c.Name(), face, 8, 18, inkColor)
	if cost := c.Cost().String(); cost != "" {
		text.Draw(img, cost, face, w-8-len(cost)*face.Advance, 34, inkColor)
	}
	for i, line := range strings.Split(c.Description(), "\n") {
		text.Draw(img, line, face, 8, 60+i*face.Height, inkColor)
	}
	atk, hasAtk := c.Attack()
	hp, hasHp := c.Health()
	if hasAtk && hasHp {
		text.Draw(img, fmt.Sprintf("%d/%d", atk, hp), face, 8, h-10, inkColor)
	}
	return img
}
