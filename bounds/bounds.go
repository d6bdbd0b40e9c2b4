// seehuhn.de/go/plot - a library for drawing scientific plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package bounds implements axis-aligned bounding boxes.
//
// A [Box] is either empty, or it covers the rectangle spanned by two
// corner points.  The zero value of Box is the empty box, which is the
// neutral element for [Box.Union].
package bounds

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Box is an axis-aligned rectangle in the plane.
// The invariant ll.X <= ur.X and ll.Y <= ur.Y holds for non-empty boxes.
type Box struct {
	ll, ur vec.Vec2
	valid  bool
}

// New returns the box with the given corner coordinates.
// The coordinates may be given in any order.
func New(x0, y0, x1, y1 float64) Box {
	return Box{
		ll:    vec.Vec2{X: math.Min(x0, x1), Y: math.Min(y0, y1)},
		ur:    vec.Vec2{X: math.Max(x0, x1), Y: math.Max(y0, y1)},
		valid: true,
	}
}

// FromCorners returns the box spanned by the two points p and q.
func FromCorners(p, q vec.Vec2) Box {
	return New(p.X, p.Y, q.X, q.Y)
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return !b.valid
}

// LowerLeft returns the corner with the smallest coordinates.
// The result is the zero vector for the empty box.
func (b Box) LowerLeft() vec.Vec2 {
	return b.ll
}

// UpperRight returns the corner with the largest coordinates.
func (b Box) UpperRight() vec.Vec2 {
	return b.ur
}

// LowerRight returns the corner with the largest x and smallest y
// coordinate.
func (b Box) LowerRight() vec.Vec2 {
	return vec.Vec2{X: b.ur.X, Y: b.ll.Y}
}

// UpperLeft returns the corner with the smallest x and largest y
// coordinate.
func (b Box) UpperLeft() vec.Vec2 {
	return vec.Vec2{X: b.ll.X, Y: b.ur.Y}
}

// Center returns the center point of the box.
func (b Box) Center() vec.Vec2 {
	return vec.Vec2{X: (b.ll.X + b.ur.X) / 2, Y: (b.ll.Y + b.ur.Y) / 2}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.ur.X - b.ll.X
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.ur.Y - b.ll.Y
}

// XRange returns the horizontal coordinate range of the box.
func (b Box) XRange() (lo, hi float64) {
	return b.ll.X, b.ur.X
}

// YRange returns the vertical coordinate range of the box.
func (b Box) YRange() (lo, hi float64) {
	return b.ll.Y, b.ur.Y
}

// Diagonal returns the Euclidean length of the corner-to-corner vector.
func (b Box) Diagonal() float64 {
	return b.ur.Sub(b.ll).Length()
}

// Contains reports whether the point (x, y) lies inside the box.
func (b Box) Contains(x, y float64) bool {
	return b.valid &&
		x >= b.ll.X && x <= b.ur.X &&
		y >= b.ll.Y && y <= b.ur.Y
}

// Union returns the smallest box containing both b and other.
// The empty box is the neutral element of this operation.
func (b Box) Union(other Box) Box {
	if !b.valid {
		return other
	}
	if !other.valid {
		return b
	}
	return Box{
		ll: vec.Vec2{
			X: math.Min(b.ll.X, other.ll.X),
			Y: math.Min(b.ll.Y, other.ll.Y),
		},
		ur: vec.Vec2{
			X: math.Max(b.ur.X, other.ur.X),
			Y: math.Max(b.ur.Y, other.ur.Y),
		},
		valid: true,
	}
}

// Extend returns the smallest box containing both b and the point p.
func (b Box) Extend(p vec.Vec2) Box {
	return b.Union(FromCorners(p, p))
}

// Scale scales the box by the given factor, keeping the center fixed.
func (b Box) Scale(factor float64) Box {
	if !b.valid {
		return b
	}
	c := b.Center()
	dx := b.Width() / 2 * factor
	dy := b.Height() / 2 * factor
	return New(c.X-dx, c.Y-dy, c.X+dx, c.Y+dy)
}

// Shift translates the box by (dx, dy).
func (b Box) Shift(dx, dy float64) Box {
	if !b.valid {
		return b
	}
	d := vec.Vec2{X: dx, Y: dy}
	return Box{ll: b.ll.Add(d), ur: b.ur.Add(d), valid: true}
}

// Rotate rotates the four corners of the box by the angle phi (in
// radians) about the given pivot point, and returns the bounding box of
// the rotated corners.  For non-axis-aligned content this is an
// over-approximation.
func (b Box) Rotate(phi float64, pivot vec.Vec2) Box {
	if !b.valid {
		return b
	}
	M := matrix.Rotate(phi)
	corners := []vec.Vec2{
		b.LowerLeft(), b.LowerRight(), b.UpperLeft(), b.UpperRight(),
	}
	var res Box
	for _, p := range corners {
		d := p.Sub(pivot)
		q := vec.Vec2{
			X: M[0]*d.X + M[2]*d.Y + M[4],
			Y: M[1]*d.X + M[3]*d.Y + M[5],
		}
		res = res.Extend(q.Add(pivot))
	}
	return res
}
