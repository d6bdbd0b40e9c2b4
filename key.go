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

	"seehuhn.de/go/plot/render"
	"seehuhn.de/go/plot/style"
)

type keyEntry struct {
	comp  Component
	label string
}

// A Key is a plot legend.  Each entry shows a sample of a component's
// line and symbol style next to a label.  The key is positioned in
// plot fraction coordinates, so that (0, 0) is the lower left and
// (1, 1) the upper right corner of the plot interior.
type Key struct {
	component

	// X, Y is the position of the first entry's sample line, in plot
	// fraction coordinates.  Further entries are stacked below.
	X, Y float64

	entries []keyEntry
}

// NewKey returns an empty key at the given plot fraction position.
func NewKey(x, y float64) *Key {
	return &Key{
		component: newComponent([]string{"component", "key"}, nil),
		X:         x,
		Y:         y,
	}
}

// A SampleDrawer is a component which draws its own key sample.
// Components without this method are shown as a sample line in the
// component's line style.
type SampleDrawer interface {
	DrawSample(ctx *Context, p0, p1 vec.Vec2)
}

// AddEntry appends an entry showing the given component's style.
func (k *Key) AddEntry(c Component, label string) {
	k.entries = append(k.entries, keyEntry{comp: c, label: label})
}

// Make implements the [Component] interface.
func (k *Key) Make(ctx *Context) error {
	sampleLen, err := k.attr.Number("samplelength")
	if err != nil {
		return err
	}
	fontSize, err := k.attr.Number("fontsize")
	if err != nil {
		return err
	}
	db := ctx.RC.Dev.BBox()
	w, h := db.Width(), db.Height()
	length := style.RelativeSize(sampleLen, w, h)
	dy := 1.5 * style.RelativeSize(fontSize, w, h)

	u, v, err := ctx.Frac.Project(k.X, k.Y)
	if err != nil {
		return err
	}

	for i, e := range k.entries {
		y := v - float64(i)*dy
		p0 := vec.Vec2{X: u, Y: y}
		p1 := vec.Vec2{X: u + length, Y: y}

		if sd, ok := e.comp.(SampleDrawer); ok {
			sd.DrawSample(ctx, p0, p1)
		} else {
			line := &render.Line{P0: p0, P1: p1}
			line.Style = e.comp.Attributes().All()
			ctx.Add(line)
		}

		text := &render.Text{
			Pos:    vec.Vec2{X: u + length + dy/2, Y: y},
			Text:   e.label,
			HAlign: render.Left,
			VAlign: render.VCenter,
		}
		text.Style = k.attr.All()
		ctx.Add(text)
	}
	return nil
}
