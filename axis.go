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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plot/render"
	"seehuhn.de/go/plot/style"
	"seehuhn.de/go/plot/ticks"
)

// A HalfAxis is one of the four axis lines of a plot frame, together
// with its ticks, tick labels and axis label.
type HalfAxis struct {
	component

	// Horizontal selects an x axis; otherwise the axis is vertical.
	Horizontal bool

	// Opposite places the axis on the top (x) or right (y) side.
	Opposite bool

	// Label is the axis label; empty for none.
	Label string

	// Ticks are the major tick positions.  If nil, tick positions are
	// chosen automatically.
	Ticks []float64

	// Subticks are the minor tick positions.  If nil, they are derived
	// from the major ticks.
	Subticks []float64

	// TickLabels are the major tick labels.  If nil, labels are
	// formatted automatically.
	TickLabels []string

	DrawSpine      bool
	DrawTicks      bool
	DrawSubticks   bool
	DrawTickLabels bool
	DrawLabel      bool

	// Intercept fixes the position of the axis line on the other
	// axis, in data coordinates.  If nil, the axis sits on the edge
	// of the data range.
	Intercept *float64
}

// NewHalfAxisX returns a horizontal axis.  The opposite (top) axis
// draws no labels by default.
func NewHalfAxisX(opposite bool) *HalfAxis {
	return newHalfAxis(true, opposite)
}

// NewHalfAxisY returns a vertical axis.  The opposite (right) axis
// draws no labels by default.
func NewHalfAxisY(opposite bool) *HalfAxis {
	return newHalfAxis(false, opposite)
}

func newHalfAxis(horizontal, opposite bool) *HalfAxis {
	return &HalfAxis{
		component:      newComponent([]string{"component", "axis"}, nil),
		Horizontal:     horizontal,
		Opposite:       opposite,
		DrawSpine:      true,
		DrawTicks:      true,
		DrawSubticks:   true,
		DrawTickLabels: !opposite,
		DrawLabel:      !opposite,
	}
}

// axisRange returns the data range along the axis direction and
// whether the axis is log-scaled.
func (a *HalfAxis) axisRange(ctx *Context) (lo, hi float64, isLog bool) {
	if a.Horizontal {
		lo, hi = ctx.DataBox.XRange()
		return lo, hi, ctx.XLog
	}
	lo, hi = ctx.DataBox.YRange()
	return lo, hi, ctx.YLog
}

// intercept returns the axis position on the other axis, in data
// coordinates.
func (a *HalfAxis) intercept(ctx *Context) float64 {
	if a.Intercept != nil {
		return *a.Intercept
	}
	var lo, hi float64
	if a.Horizontal {
		lo, hi = ctx.DataBox.YRange()
	} else {
		lo, hi = ctx.DataBox.XRange()
	}
	if a.Opposite {
		return hi
	}
	return lo
}

// outward returns the device-space unit vector pointing from the axis
// line away from the plot interior.  A flipped axis orientation
// reverses the side on which tick labels are placed.
func (a *HalfAxis) outward(ctx *Context) vec.Vec2 {
	s := -1.0
	if a.Opposite {
		s = 1
	}
	if a.Horizontal {
		if ctx.Proj.FlippedY() {
			s = -s
		}
		return vec.Vec2{Y: s}
	}
	if ctx.Proj.FlippedX() {
		s = -s
	}
	return vec.Vec2{X: s}
}

// project maps (along, across) coordinates to device space, where
// along is the coordinate in the axis direction.
func (a *HalfAxis) project(ctx *Context, along, across float64) (vec.Vec2, error) {
	if a.Horizontal {
		return ctx.Project(along, across)
	}
	return ctx.Project(across, along)
}

// Make implements the [Component] interface.
func (a *HalfAxis) Make(ctx *Context) error {
	lo, hi, isLog := a.axisRange(ctx)

	major := a.Ticks
	if major == nil {
		if isLog {
			major = ticks.DefaultLog(lo, hi)
		} else {
			major = ticks.DefaultLinear(lo, hi)
		}
	}
	minor := a.Subticks
	if minor == nil {
		if isLog {
			minor = ticks.SubLog(lo, hi, major, 0)
		} else {
			minor = ticks.SubLinear(lo, hi, major, 0)
		}
	}
	labels := a.TickLabels
	if labels == nil {
		labels = make([]string, len(major))
		for i, t := range major {
			labels[i] = ticks.FormatLabel(t, hi-lo)
		}
	}

	icpt := a.intercept(ctx)
	out := a.outward(ctx)

	db := ctx.RC.Dev.BBox()
	w, h := db.Width(), db.Height()
	size := func(name string) (float64, error) {
		v, err := a.attr.Number(name)
		if err != nil {
			return 0, err
		}
		return style.RelativeSize(v, w, h), nil
	}

	if a.DrawSpine {
		p0, err := a.project(ctx, lo, icpt)
		if err != nil {
			return err
		}
		p1, err := a.project(ctx, hi, icpt)
		if err != nil {
			return err
		}
		obj := &render.Line{P0: p0, P1: p1}
		obj.Style = a.attr.All()
		ctx.Add(obj)
	}

	majorPts, err := a.tickPoints(ctx, major, lo, hi, icpt)
	if err != nil {
		return err
	}

	if a.DrawTicks && len(majorPts) > 0 {
		ticklen, err := size("ticksize")
		if err != nil {
			return err
		}
		obj := &render.Comb{Points: majorPts, D: scaled(out, -ticklen)}
		obj.Style = a.attr.All()
		ctx.Add(obj)
	}

	if a.DrawSubticks {
		minorPts, err := a.tickPoints(ctx, minor, lo, hi, icpt)
		if err != nil {
			return err
		}
		if len(minorPts) > 0 {
			sublen, err := size("subticksize")
			if err != nil {
				return err
			}
			obj := &render.Comb{Points: minorPts, D: scaled(out, -sublen)}
			obj.Style = a.attr.All()
			ctx.Add(obj)
		}
	}

	if a.DrawTickLabels && len(majorPts) > 0 {
		pad, err := size("labelpad")
		if err != nil {
			return err
		}
		pts := make([]vec.Vec2, len(majorPts))
		for i, p := range majorPts {
			pts[i] = p.Add(scaled(out, pad))
		}
		n := len(pts)
		if len(labels) < n {
			n = len(labels)
		}
		hAlign, vAlign := a.labelAlign(out)
		obj := &render.Labels{
			Points: pts[:n],
			Labels: labels[:n],
			HAlign: hAlign,
			VAlign: vAlign,
		}
		obj.Style = a.tickLabelStyle()
		ctx.Add(obj)
	}

	if a.DrawLabel && a.Label != "" {
		off, err := size("labeloffset")
		if err != nil {
			return err
		}
		mid, err := a.project(ctx, (lo+hi)/2, icpt)
		if err != nil {
			return err
		}
		if isLog {
			mid, err = a.project(ctx, math.Sqrt(lo*hi), icpt)
			if err != nil {
				return err
			}
		}
		angle := 0.0
		if !a.Horizontal {
			angle = math.Pi / 2
		}
		obj := &render.Text{
			Pos:    mid.Add(scaled(out, off)),
			Text:   a.Label,
			Angle:  angle,
			HAlign: render.HCenter,
			VAlign: render.VCenter,
		}
		obj.Style = a.attr.All()
		ctx.Add(obj)
	}

	return nil
}

// tickPoints projects the tick positions inside [lo, hi] onto the axis
// line.
func (a *HalfAxis) tickPoints(ctx *Context, pos []float64, lo, hi, icpt float64) ([]vec.Vec2, error) {
	var res []vec.Vec2
	for _, t := range pos {
		if t < lo-1e-10*(hi-lo) || t > hi+1e-10*(hi-lo) {
			continue
		}
		p, err := a.project(ctx, t, icpt)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

func (a *HalfAxis) labelAlign(out vec.Vec2) (render.HAlign, render.VAlign) {
	if a.Horizontal {
		if out.Y < 0 {
			return render.HCenter, render.Top
		}
		return render.HCenter, render.Bottom
	}
	if out.X < 0 {
		return render.Right, render.VCenter
	}
	return render.Left, render.VCenter
}

// tickLabelStyle is the axis style with the tick label font size
// applied.
func (a *HalfAxis) tickLabelStyle() style.Dict {
	res := style.Dict{}
	for k, v := range a.attr.All() {
		res[k] = v
	}
	if n, err := a.attr.Number("ticklabel_size"); err == nil {
		res[style.FontSize] = style.Number(n)
	}
	return res
}
