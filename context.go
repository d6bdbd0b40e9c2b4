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
	"seehuhn.de/go/plot/config"
	"seehuhn.de/go/plot/projection"
	"seehuhn.de/go/plot/render"
	"seehuhn.de/go/plot/style"
)

// Config supplies the default style values used when components are
// created.  It can be replaced, e.g. with a table loaded by
// config.LoadFile, before components are constructed.
var Config style.Source = config.Builtin()

// A Context describes one render pass of one plot.  It is created when
// the plot is drawn and discarded afterwards; it must not be shared
// between concurrent passes.
type Context struct {
	RC *render.Context

	// DeviceBox is the interior region of the plot in device
	// coordinates.
	DeviceBox bounds.Box

	// DataBox is the data coordinate range shown by the plot.
	DataBox bounds.Box

	// Proj maps data coordinates onto DeviceBox.
	Proj projection.Projection

	// Frac maps the unit square onto DeviceBox; it is used for
	// positioning relative to the plot, e.g. for keys and insets.
	Frac projection.Projection

	XLog, YLog bool

	// objs collects the render objects of the component currently
	// being made.  The slice is reused between components.
	objs []render.Object
}

// Add appends a render object to the current pass.  It is called by
// the Make methods of plot components.
func (ctx *Context) Add(obj render.Object) {
	ctx.objs = append(ctx.objs, obj)
}

// Project maps the data point (x, y) to device coordinates.
func (ctx *Context) Project(x, y float64) (vec.Vec2, error) {
	u, v, err := ctx.Proj.Project(x, y)
	return vec.Vec2{X: u, Y: v}, err
}

// ProjectAll maps a sequence of data points to device coordinates.
func (ctx *Context) ProjectAll(x, y []float64) ([]vec.Vec2, error) {
	res := make([]vec.Vec2, len(x))
	for i := range x {
		p, err := ctx.Project(x[i], y[i])
		if err != nil {
			return nil, err
		}
		res[i] = p
	}
	return res, nil
}

// directRenderer is implemented by components which bypass the render
// object mechanism, e.g. insets containing a whole sub-plot.
type directRenderer interface {
	renderDirect(ctx *Context) error
}

// renderComponent makes and renders a single component.
func renderComponent(ctx *Context, c Component) error {
	if d, ok := c.(directRenderer); ok {
		return d.renderDirect(ctx)
	}
	ctx.objs = ctx.objs[:0]
	if err := c.Make(ctx); err != nil {
		return err
	}
	for _, obj := range ctx.objs {
		if err := render.Render(obj, ctx.RC); err != nil {
			return err
		}
	}
	return nil
}

// measureComponent returns the device-space bounding box the component
// would cover if rendered in this context.
func measureComponent(ctx *Context, c Component) (bounds.Box, error) {
	ctx.objs = ctx.objs[:0]
	if err := c.Make(ctx); err != nil {
		return bounds.Box{}, err
	}
	var b bounds.Box
	for _, obj := range ctx.objs {
		b = b.Union(render.Measure(obj, ctx.RC))
	}
	return b, nil
}
