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

package plot

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plot/bounds"
)

const (
	// maxLayoutIter bounds the number of layout iterations.
	maxLayoutIter = 10

	// layoutTol is the convergence tolerance, relative to the diagonal
	// of the target region.
	layoutTol = 0.005
)

// solveInterior grows or shrinks an interior content region until the
// exterior furniture measured by the callback exactly fills the target
// region.
//
// The measure callback returns the device bounding box of the plot
// including all furniture, for a given interior region.  Since tick
// label extents depend on the axis ranges, which in turn depend on the
// region size, no closed-form solution exists; a damped fixed-point
// iteration is used instead.  If the iteration has not converged after
// maxLayoutIter rounds, a warning is logged and the last guess is
// returned.
func solveInterior(exterior bounds.Box, measure func(bounds.Box) (bounds.Box, error)) (bounds.Box, error) {
	interior := exterior
	diag := exterior.Diagonal()
	for i := 0; i < maxLayoutIter; i++ {
		ext, err := measure(interior)
		if err != nil {
			return bounds.Box{}, err
		}
		dll := exterior.LowerLeft().Sub(ext.LowerLeft())
		dur := exterior.UpperRight().Sub(ext.UpperRight())
		if dll.Length()/diag < layoutTol && dur.Length()/diag < layoutTol {
			return interior, nil
		}
		scale := interior.Diagonal() / ext.Diagonal()
		interior = bounds.FromCorners(
			interior.LowerLeft().Add(scaled(dll, scale)),
			interior.UpperRight().Add(scaled(dur, scale)))
	}
	warnf("plot: layout did not converge after %d iterations", maxLayoutIter)
	return interior, nil
}

func scaled(v vec.Vec2, s float64) vec.Vec2 {
	return vec.Vec2{X: v.X * s, Y: v.Y * s}
}

// withAspect shrinks the box around its center until the height/width
// ratio equals the given value.  A ratio of zero leaves the box
// unchanged.
func withAspect(b bounds.Box, ratio float64) bounds.Box {
	if ratio <= 0 || b.IsEmpty() {
		return b
	}
	w := b.Width()
	h := b.Height()
	c := b.Center()
	if h/w > ratio {
		h = w * ratio
	} else {
		w = h / ratio
	}
	return bounds.New(c.X-w/2, c.Y-h/2, c.X+w/2, c.Y+h/2)
}
