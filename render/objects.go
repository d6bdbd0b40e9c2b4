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

package render

import (
	stdimage "image"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plot/bounds"
	"seehuhn.de/go/plot/style"
)

// An Object is a primitive drawable shape.  Objects are created
// transiently during a render pass and consumed immediately.
//
// The concrete types are [Line], [Path], [Polygon], [Symbol],
// [Symbols], [Text], [Labels], [Comb] and [Image].
type Object interface {
	// BBox returns the device-space bounding box of the object.
	BBox(ctx *Context) bounds.Box

	// Draw emits the object's primitive calls on the renderer.
	Draw(ctx *Context)

	// Attributes returns the object's style overrides.
	Attributes() style.Dict
}

// objectStyle carries the style overrides shared by all object types.
type objectStyle struct {
	Style style.Dict
}

func (o *objectStyle) Attributes() style.Dict {
	return o.Style
}

// SetStyle stores a style override on the object.
func (o *objectStyle) SetStyle(k style.Key, v style.Value) {
	if o.Style == nil {
		o.Style = style.Dict{}
	}
	o.Style[k] = v
}

// Line is a straight line segment.
type Line struct {
	objectStyle
	P0, P1 vec.Vec2
}

func (o *Line) BBox(ctx *Context) bounds.Box {
	return bounds.FromCorners(o.P0, o.P1)
}

func (o *Line) Draw(ctx *Context) {
	ctx.Dev.Line(o.P0, o.P1)
}

// Path is an open polyline.
type Path struct {
	objectStyle
	Points []vec.Vec2
}

func (o *Path) BBox(ctx *Context) bounds.Box {
	return pointsBBox(o.Points)
}

func (o *Path) Draw(ctx *Context) {
	ctx.Dev.Curve(o.Points)
}

// Polygon is a closed, filled polygon.
type Polygon struct {
	objectStyle
	Points []vec.Vec2
}

func (o *Polygon) BBox(ctx *Context) bounds.Box {
	return pointsBBox(o.Points)
}

func (o *Polygon) Draw(ctx *Context) {
	ctx.Dev.Polygon(o.Points)
}

// Symbol is a single plot symbol.
type Symbol struct {
	objectStyle
	Pos vec.Vec2
}

func (o *Symbol) BBox(ctx *Context) bounds.Box {
	return bounds.FromCorners(o.Pos, o.Pos)
}

func (o *Symbol) Draw(ctx *Context) {
	ctx.Dev.Symbol(o.Pos)
}

// Symbols draws the same plot symbol at many positions.
type Symbols struct {
	objectStyle
	Points []vec.Vec2
}

func (o *Symbols) BBox(ctx *Context) bounds.Box {
	return pointsBBox(o.Points)
}

func (o *Symbols) Draw(ctx *Context) {
	ctx.Dev.Symbols(o.Points)
}

// Comb draws the segment D at every point, e.g. for axis ticks.
type Comb struct {
	objectStyle
	Points []vec.Vec2
	D      vec.Vec2
}

func (o *Comb) BBox(ctx *Context) bounds.Box {
	b := pointsBBox(o.Points)
	return b.Union(b.Shift(o.D.X, o.D.Y))
}

func (o *Comb) Draw(ctx *Context) {
	for _, p := range o.Points {
		ctx.Dev.Move(p)
		ctx.Dev.RelLineTo(o.D)
	}
	ctx.Dev.Stroke()
}

// HAlign selects the horizontal text alignment.
type HAlign int

const (
	Left HAlign = iota
	HCenter
	Right
)

// VAlign selects the vertical text alignment.
type VAlign int

const (
	Bottom VAlign = iota
	VCenter
	Top
)

// Text is a single aligned, optionally rotated text string.
type Text struct {
	objectStyle
	Pos    vec.Vec2
	Text   string
	Angle  float64 // radians, counter-clockwise
	HAlign HAlign
	VAlign VAlign
}

func (o *Text) BBox(ctx *Context) bounds.Box {
	return textBBox(ctx, o.Pos, o.Text, o.Angle, o.HAlign, o.VAlign)
}

func (o *Text) Draw(ctx *Context) {
	drawText(ctx, o.Pos, o.Text, o.Angle, o.HAlign, o.VAlign)
}

// Labels draws one string per point, all with the same alignment.
type Labels struct {
	objectStyle
	Points []vec.Vec2
	Labels []string
	Angle  float64
	HAlign HAlign
	VAlign VAlign
}

func (o *Labels) BBox(ctx *Context) bounds.Box {
	var b bounds.Box
	for i, p := range o.Points {
		b = b.Union(textBBox(ctx, p, o.Labels[i], o.Angle, o.HAlign, o.VAlign))
	}
	return b
}

func (o *Labels) Draw(ctx *Context) {
	for i, p := range o.Points {
		drawText(ctx, p, o.Labels[i], o.Angle, o.HAlign, o.VAlign)
	}
}

// Image draws a raster image into a device-space rectangle.
type Image struct {
	objectStyle
	Img    stdimage.Image
	Region bounds.Box
}

func (o *Image) BBox(ctx *Context) bounds.Box {
	return o.Region
}

func (o *Image) Draw(ctx *Context) {
	ctx.Dev.Image(o.Img, o.Region)
}

func pointsBBox(points []vec.Vec2) bounds.Box {
	var b bounds.Box
	for _, p := range points {
		b = b.Extend(p)
	}
	return b
}

// alignOffset returns the offset of the lower left corner of the text
// rectangle relative to the anchor point, before rotation.
func alignOffset(h HAlign, v VAlign, width, height float64) vec.Vec2 {
	var off vec.Vec2
	switch h {
	case HCenter:
		off.X = -width / 2
	case Right:
		off.X = -width
	}
	switch v {
	case VCenter:
		off.Y = -height / 2
	case Top:
		off.Y = -height
	}
	return off
}

func rotateVec(p vec.Vec2, phi float64) vec.Vec2 {
	c := math.Cos(phi)
	s := math.Sin(phi)
	return vec.Vec2{X: c*p.X - s*p.Y, Y: s*p.X + c*p.Y}
}

func textBBox(ctx *Context, pos vec.Vec2, s string, angle float64, h HAlign, v VAlign) bounds.Box {
	width := ctx.Dev.TextWidth(s)
	height := ctx.Dev.TextHeight(s)
	off := alignOffset(h, v, width, height)
	b := bounds.New(pos.X+off.X, pos.Y+off.Y,
		pos.X+off.X+width, pos.Y+off.Y+height)
	if angle != 0 {
		b = b.Rotate(angle, pos)
	}
	return b
}

func drawText(ctx *Context, pos vec.Vec2, s string, angle float64, h HAlign, v VAlign) {
	width := ctx.Dev.TextWidth(s)
	height := ctx.Dev.TextHeight(s)
	off := alignOffset(h, v, width, height)
	if angle != 0 {
		off = rotateVec(off, angle)
	}
	ctx.Dev.Text(pos.Add(off), s, angle)
}
