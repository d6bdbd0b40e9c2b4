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

// Package projection maps data coordinates to device coordinates.
//
// An [Affine] projection maps a source rectangle onto a destination box
// using independent scale and offset per axis.  A [Log] projection
// additionally applies a log10 transform to one or both axes before the
// affine map.
package projection

import (
	"math"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plot/bounds"
)

// A Projection maps data coordinates to device coordinates.
type Projection interface {
	// Project maps the data point (x, y) to device coordinates.
	Project(x, y float64) (u, v float64, err error)

	// FlippedX reports whether the source x interval was given in
	// descending order.
	FlippedX() bool

	// FlippedY reports whether the source y interval was given in
	// descending order.
	FlippedY() bool
}

// DomainError indicates that a coordinate outside the domain of a log
// axis was projected.
type DomainError struct {
	Axis  string // "x" or "y"
	Value float64
}

func (err *DomainError) Error() string {
	return "log " + err.Axis + " axis: non-positive coordinate " +
		strconv.FormatFloat(err.Value, 'g', -1, 64)
}

// Affine is a projection consisting of a scale and an offset per axis.
type Affine struct {
	M            matrix.Matrix
	flipX, flipY bool
}

// NewAffine returns the affine projection mapping the rectangle
// [x0,x1] x [y0,y1] onto dest.  Degenerate ranges with x0 == x1 or
// y0 == y1 are widened to [v-1, v+1] to avoid a vanishing scale.
// Giving a source interval in descending order flips the corresponding
// axis.
func NewAffine(x0, x1, y0, y1 float64, dest bounds.Box) *Affine {
	if x0 == x1 {
		x0, x1 = x0-1, x0+1
	}
	if y0 == y1 {
		y0, y1 = y0-1, y0+1
	}
	ll := dest.LowerLeft()
	ur := dest.UpperRight()
	sx := (ur.X - ll.X) / (x1 - x0)
	sy := (ur.Y - ll.Y) / (y1 - y0)
	return &Affine{
		M:     matrix.Matrix{sx, 0, 0, sy, ll.X - sx*x0, ll.Y - sy*y0},
		flipX: x0 > x1,
		flipY: y0 > y1,
	}
}

// Project implements the [Projection] interface.
func (t *Affine) Project(x, y float64) (float64, float64, error) {
	u := t.M[0]*x + t.M[2]*y + t.M[4]
	v := t.M[1]*x + t.M[3]*y + t.M[5]
	return u, v, nil
}

// FlippedX implements the [Projection] interface.
func (t *Affine) FlippedX() bool { return t.flipX }

// FlippedY implements the [Projection] interface.
func (t *Affine) FlippedY() bool { return t.flipY }

// Log wraps an affine projection with optional log10 transforms.
type Log struct {
	Affine *Affine
	XLog   bool
	YLog   bool
}

// NewLog returns a projection which maps [x0,x1] x [y0,y1] onto dest,
// where the bounds of log-scaled axes are given in data coordinates.
// Bounds of log-scaled axes must be positive.
func NewLog(x0, x1, y0, y1 float64, dest bounds.Box, xlog, ylog bool) (*Log, error) {
	if xlog {
		if x0 <= 0 {
			return nil, &DomainError{Axis: "x", Value: x0}
		}
		if x1 <= 0 {
			return nil, &DomainError{Axis: "x", Value: x1}
		}
		x0, x1 = math.Log10(x0), math.Log10(x1)
	}
	if ylog {
		if y0 <= 0 {
			return nil, &DomainError{Axis: "y", Value: y0}
		}
		if y1 <= 0 {
			return nil, &DomainError{Axis: "y", Value: y1}
		}
		y0, y1 = math.Log10(y0), math.Log10(y1)
	}
	return &Log{
		Affine: NewAffine(x0, x1, y0, y1, dest),
		XLog:   xlog,
		YLog:   ylog,
	}, nil
}

// Project implements the [Projection] interface.
func (t *Log) Project(x, y float64) (float64, float64, error) {
	if t.XLog {
		if x <= 0 {
			return 0, 0, &DomainError{Axis: "x", Value: x}
		}
		x = math.Log10(x)
	}
	if t.YLog {
		if y <= 0 {
			return 0, 0, &DomainError{Axis: "y", Value: y}
		}
		y = math.Log10(y)
	}
	return t.Affine.Project(x, y)
}

// FlippedX implements the [Projection] interface.
func (t *Log) FlippedX() bool { return t.Affine.flipX }

// FlippedY implements the [Projection] interface.
func (t *Log) FlippedY() bool { return t.Affine.flipY }

// Compose returns the projection which first applies inner and then
// outer.  If both arguments are affine, the result is a single affine
// projection.
func Compose(outer, inner Projection) Projection {
	if a, ok := outer.(*Affine); ok {
		if b, ok := inner.(*Affine); ok {
			return &Affine{
				M:     b.M.Mul(a.M),
				flipX: a.flipX != b.flipX,
				flipY: a.flipY != b.flipY,
			}
		}
	}
	return &composed{outer: outer, inner: inner}
}

type composed struct {
	outer, inner Projection
}

func (t *composed) Project(x, y float64) (float64, float64, error) {
	u, v, err := t.inner.Project(x, y)
	if err != nil {
		return 0, 0, err
	}
	return t.outer.Project(u, v)
}

func (t *composed) FlippedX() bool {
	return t.outer.FlippedX() != t.inner.FlippedX()
}

func (t *composed) FlippedY() bool {
	return t.outer.FlippedY() != t.inner.FlippedY()
}

// Point projects the point p, returning the result as a vector.
func Point(t Projection, p vec.Vec2) (vec.Vec2, error) {
	u, v, err := t.Project(p.X, p.Y)
	return vec.Vec2{X: u, Y: v}, err
}
