package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, 2)

	assert.Equal(t, Pt(4, 6), a.Add(b))
	assert.Equal(t, Pt(2, 2), a.Sub(b))
	assert.Equal(t, Pt(3, 8), a.Mul(b))
	assert.Equal(t, Pt(1.5, 2), a.Div(2))
	assert.Equal(t, Pt(6, 8), a.Scale(2))
	assert.Equal(t, Point{}, Zero())
}

func TestBetweenIncludesEdges(t *testing.T) {
	min, max := Pt(0, 0), Pt(10, 20)

	assert.True(t, Pt(0, 0).Between(min, max))
	assert.True(t, Pt(10, 20).Between(min, max))
	assert.True(t, Pt(5, 5).Between(min, max))
	assert.False(t, Pt(-0.1, 5).Between(min, max))
	assert.False(t, Pt(5, 20.1).Between(min, max))
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(Pt(100, 100), Pt(150, 200))

	assert.Equal(t, Pt(25, 0), r.Min)
	assert.Equal(t, Pt(175, 200), r.Max)
	assert.Equal(t, Pt(150, 200), r.Size())
	assert.True(t, r.Contains(Pt(100, 100)))
	assert.True(t, r.Contains(Pt(25, 0)))
	assert.False(t, r.Contains(Pt(176, 100)))
}
