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

	"seehuhn.de/go/plot/bounds"
	"seehuhn.de/go/plot/projection"
	"seehuhn.de/go/plot/render"
)

// A Container can be rendered into a device region.  Containers are
// the top-level building blocks: plots, framed plots and tables.
type Container interface {
	// Compose renders the container into the given device region.
	Compose(rc *render.Context, region bounds.Box) error
}

// drawInto renders a container onto a device, leaving a margin
// (a fraction of the device size) around the given region.
func drawInto(dev render.Renderer, margin float64, c Container) error {
	if err := dev.Open(); err != nil {
		return err
	}
	rc := render.NewContext(dev)
	region := dev.BBox().Scale(1 - 2*margin)
	if err := c.Compose(rc, region); err != nil {
		dev.Close()
		return err
	}
	return dev.Close()
}

// A Plot shows data components in a rectangular region, without a
// frame.  The visible data range is the union of the component limits,
// unless overridden by XRange and YRange.
type Plot struct {
	component

	// Content holds the plot's data components.
	Content *Composite

	// XLog and YLog select logarithmic axis scales.
	XLog, YLog bool

	// XRange and YRange override the automatic data range.  A range
	// given in descending order flips the axis.
	XRange, YRange *[2]float64

	// Aspect, if positive, constrains the height/width ratio of the
	// plot interior.
	Aspect float64
}

// NewPlot returns an empty plot.
func NewPlot() *Plot {
	return &Plot{
		component: newComponent([]string{"plot"}, nil),
		Content:   NewComposite(),
	}
}

// Add appends data components to the plot.
func (p *Plot) Add(components ...Component) {
	p.Content.Add(components...)
}

// SetXRange fixes the visible x range.
func (p *Plot) SetXRange(lo, hi float64) {
	p.XRange = &[2]float64{lo, hi}
}

// SetYRange fixes the visible y range.
func (p *Plot) SetYRange(lo, hi float64) {
	p.YRange = &[2]float64{lo, hi}
}

// dataRange determines the visible data range: explicit ranges where
// set, the padded union of the component limits otherwise.
func (p *Plot) dataRange() (x0, x1, y0, y1 float64, err error) {
	limits := p.Content.Limits()
	haveX := !limits.IsEmpty()
	haveY := haveX
	if haveX {
		x0, x1 = limits.XRange()
		y0, y1 = limits.YRange()
	}

	gutter, err := p.attr.Number("gutter")
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if p.XRange != nil {
		x0, x1 = p.XRange[0], p.XRange[1]
		haveX = true
	} else if haveX {
		x0, x1 = padRange(x0, x1, gutter, p.XLog)
	}
	if p.YRange != nil {
		y0, y1 = p.YRange[0], p.YRange[1]
		haveY = true
	} else if haveY {
		y0, y1 = padRange(y0, y1, gutter, p.YLog)
	}
	if !haveX || !haveY {
		return 0, 0, 0, 0, &EmptyContainerError{Kind: "plot"}
	}
	return x0, x1, y0, y1, nil
}

// padRange widens a data range by the given fraction on both sides.
// Log-scaled ranges are widened in log space.
func padRange(lo, hi, frac float64, isLog bool) (float64, float64) {
	if isLog && lo > 0 && hi > 0 {
		d := frac * math.Log10(hi/lo)
		return lo * math.Pow(10, -d), hi * math.Pow(10, d)
	}
	d := frac * (hi - lo)
	return lo - d, hi + d
}

// newContext creates the render context for one pass, with the data
// range projected onto the given interior region.
func (p *Plot) newContext(rc *render.Context, interior bounds.Box) (*Context, error) {
	x0, x1, y0, y1, err := p.dataRange()
	if err != nil {
		return nil, err
	}
	proj, err := projection.NewLog(x0, x1, y0, y1, interior, p.XLog, p.YLog)
	if err != nil {
		return nil, err
	}
	return &Context{
		RC:        rc,
		DeviceBox: interior,
		DataBox:   bounds.New(x0, y0, x1, y1),
		Proj:      proj,
		Frac:      projection.NewAffine(0, 1, 0, 1, interior),
		XLog:      p.XLog,
		YLog:      p.YLog,
	}, nil
}

// renderClipped renders a composite with drawing restricted to the
// given region.
func renderClipped(ctx *Context, content *Composite, region bounds.Box) error {
	ctx.RC.Style.Push(nil)
	ctx.RC.Dev.SetClip(region)
	err := content.render(ctx)
	if err2 := ctx.RC.Style.Pop(); err == nil {
		err = err2
	}
	return err
}

// Compose implements the [Container] interface.
func (p *Plot) Compose(rc *render.Context, region bounds.Box) error {
	interior := withAspect(region, p.Aspect)
	ctx, err := p.newContext(rc, interior)
	if err != nil {
		return err
	}
	return renderClipped(ctx, p.Content, interior)
}

// Draw renders the plot onto a device.
func (p *Plot) Draw(dev render.Renderer) error {
	margin, err := p.attr.Number("margin")
	if err != nil {
		return err
	}
	return drawInto(dev, margin, p)
}
