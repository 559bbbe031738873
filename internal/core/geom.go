// Package core provides the engine-neutral pieces shared by the simulation
// and its hosts: a cell buffer, cell geometry, semantic actions and the
// runtime parameters. Nothing here depends on Bubble Tea.
package core

import "math"

// Rect is a box in screen cells. W and H may be zero; a zero box draws nothing.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clip returns the part of r that lies inside a w x h area anchored at the
// origin.
func (r Rect) Clip(w, h int) Rect {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.Right(), w), min(r.Bottom(), h)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Projection maps continuous game-space coordinates onto screen cells.
type Projection struct {
	SX float64 // cells per game unit, horizontal
	SY float64 // cells per game unit, vertical
}

// NewProjection fits a worldW x worldH playfield into cols x rows cells.
func NewProjection(worldW, worldH float64, cols, rows int) Projection {
	p := Projection{}
	if worldW > 0 {
		p.SX = float64(cols) / worldW
	}
	if worldH > 0 {
		p.SY = float64(rows) / worldH
	}
	return p
}

// X converts a horizontal game coordinate to a column.
func (p Projection) X(x float64) int {
	return int(math.Floor(x * p.SX))
}

// Y converts a vertical game coordinate to a row.
func (p Projection) Y(y float64) int {
	return int(math.Floor(y * p.SY))
}

// Box projects a game-space box. Anything with a positive size covers at
// least one cell in each direction so thin objects stay visible.
func (p Projection) Box(x, y, w, h float64) Rect {
	cx, cy := p.X(x), p.Y(y)
	return Rect{
		X: cx,
		Y: cy,
		W: max(p.X(x+w)-cx, 1),
		H: max(p.Y(y+h)-cy, 1),
	}
}
