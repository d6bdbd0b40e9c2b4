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
	"seehuhn.de/go/plot/projection"
)

// An Inset embeds a container inside a plot.  The inset region is
// given in plot fraction coordinates of the surrounding plot.
type Inset struct {
	component

	// P0, P1 are opposite corners of the inset region, in plot
	// fraction coordinates.
	P0, P1 vec.Vec2

	// Content is the embedded container.
	Content Container
}

// NewInset embeds the given container into the plot fraction rectangle
// with corners (x0, y0) and (x1, y1).
func NewInset(x0, y0, x1, y1 float64, content Container) *Inset {
	return &Inset{
		component: newComponent([]string{"component"}, nil),
		P0:        vec.Vec2{X: x0, Y: y0},
		P1:        vec.Vec2{X: x1, Y: y1},
		Content:   content,
	}
}

// Make implements the [Component] interface.  Insets emit no render
// objects of their own; the content is composed by renderDirect.
func (c *Inset) Make(ctx *Context) error {
	return nil
}

func (c *Inset) renderDirect(ctx *Context) error {
	p0, err := projection.Point(ctx.Frac, c.P0)
	if err != nil {
		return err
	}
	p1, err := projection.Point(ctx.Frac, c.P1)
	if err != nil {
		return err
	}
	region := bounds.FromCorners(p0, p1)
	return c.Content.Compose(ctx.RC, region)
}
