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

import "seehuhn.de/go/plot/style"

// A Frame is the set of four axes surrounding the interior of a framed
// plot.  X1 and Y1 are the bottom and left axes and carry labels by
// default; X2 and Y2 mirror them on the opposite sides without labels.
type Frame struct {
	X1, X2, Y1, Y2 *HalfAxis
}

// NewFrame returns a frame with the default axis configuration.
func NewFrame() *Frame {
	return &Frame{
		X1: NewHalfAxisX(false),
		X2: NewHalfAxisX(true),
		Y1: NewHalfAxisY(false),
		Y2: NewHalfAxisY(true),
	}
}

// components returns the four axes in drawing order.
func (f *Frame) components() []Component {
	return []Component{f.X1, f.X2, f.Y1, f.Y2}
}

// SetStyle applies a style override to all four axes.
func (f *Frame) SetStyle(name string, v style.Value) {
	SetAll(f.components(), name, v)
}

// SetXLabel sets the label of the bottom axis.
func (f *Frame) SetXLabel(label string) {
	f.X1.Label = label
}

// SetYLabel sets the label of the left axis.
func (f *Frame) SetYLabel(label string) {
	f.Y1.Label = label
}
