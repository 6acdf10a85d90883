// Package geom holds the 2D primitives every positional computation on the
// board is expressed in. Screen coordinates grow right and down.
package geom

import "fmt"

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func Zero() Point { return Point{} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul multiplies component-wise.
func (p Point) Mul(q Point) Point { return Point{p.X * q.X, p.Y * q.Y} }

func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

func (p Point) Div(f float64) Point { return Point{p.X / f, p.Y / f} }

// Between reports whether p lies inside the box spanned by min and max,
// edges included.
func (p Point) Between(min, max Point) bool {
	return min.X <= p.X && min.Y <= p.Y && max.X >= p.X && max.Y >= p.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// Rect is an axis-aligned box given by its corners.
type Rect struct {
	Min, Max Point
}

// CenteredRect returns the box of the given size centered on c.
func CenteredRect(c, size Point) Rect {
	half := size.Div(2)
	return Rect{Min: c.Sub(half), Max: c.Add(half)}
}

func (r Rect) Contains(p Point) bool { return p.Between(r.Min, r.Max) }

func (r Rect) Size() Point { return r.Max.Sub(r.Min) }
