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

// Package render defines the renderer contract and the primitive
// objects a plot is composed of.
package render

import (
	"image"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plot/bounds"
	"seehuhn.de/go/plot/style"
)

// Renderer is the contract implemented by output backends.  All
// coordinates are in device space.
type Renderer interface {
	style.Device // SaveState, RestoreState, Set

	Open() error
	Close() error

	// BBox returns the device bounding box.
	BBox() bounds.Box

	// Get returns the current value of a drawing attribute.
	Get(name string) (style.Value, bool)

	Line(p0, p1 vec.Vec2)
	Curve(points []vec.Vec2)
	Polygon(points []vec.Vec2)

	// Text draws the string s anchored at pos, rotated by angle
	// (radians, counter-clockwise).
	Text(pos vec.Vec2, s string, angle float64)
	TextWidth(s string) float64
	TextHeight(s string) float64

	Symbol(pos vec.Vec2)
	Symbols(points []vec.Vec2)

	Image(img image.Image, region bounds.Box)

	Move(pos vec.Vec2)
	RelLineTo(d vec.Vec2)
	Stroke()

	// SetClip restricts subsequent drawing to the given rectangle.
	// The clip region is part of the saved drawing state.
	SetClip(region bounds.Box)
}

// A Context bundles a renderer with its style stack for one render
// pass.  A Context must not be shared between concurrent passes.
type Context struct {
	Dev   Renderer
	Style *style.Stack
}

// NewContext returns a render context for the given renderer.
func NewContext(dev Renderer) *Context {
	b := dev.BBox()
	return &Context{
		Dev:   dev,
		Style: style.NewStack(dev, b.Width(), b.Height()),
	}
}

// Render draws obj with its style attributes applied: the object's
// style is pushed, the object drawn, and the style popped again.
func Render(obj Object, ctx *Context) error {
	ctx.Style.Push(obj.Attributes())
	obj.Draw(ctx)
	return ctx.Style.Pop()
}

// Measure returns the device-space bounding box of obj with its style
// attributes applied.
func Measure(obj Object, ctx *Context) bounds.Box {
	ctx.Style.Push(obj.Attributes())
	b := obj.BBox(ctx)
	_ = ctx.Style.Pop() // balanced by construction
	return b
}
