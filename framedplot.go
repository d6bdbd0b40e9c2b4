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
	"seehuhn.de/go/plot/render"
	"seehuhn.de/go/plot/style"
)

// A FramedPlot is a plot surrounded by four axes, with an optional
// title.  The axis furniture is placed outside the plot interior; the
// interior region is chosen iteratively so that the plot including all
// furniture fills the target region.
type FramedPlot struct {
	Plot

	// Frame holds the four axes.
	Frame *Frame

	// Title is drawn centered above the plot; empty for none.
	Title string

	titleAttr *style.AttributeSet
}

// NewFramedPlot returns an empty framed plot.
func NewFramedPlot() *FramedPlot {
	return &FramedPlot{
		Plot:      *NewPlot(),
		Frame:     NewFrame(),
		titleAttr: style.NewAttributeSet(Config, []string{"component", "title"}, style.TextRename),
	}
}

// SetTitle sets the plot title.
func (p *FramedPlot) SetTitle(title string) {
	p.Title = title
}

// SetXLabel sets the label of the bottom axis.
func (p *FramedPlot) SetXLabel(label string) {
	p.Frame.SetXLabel(label)
}

// SetYLabel sets the label of the left axis.
func (p *FramedPlot) SetYLabel(label string) {
	p.Frame.SetYLabel(label)
}

// titleObject returns the render object for the plot title, positioned
// above the top axis.
func (p *FramedPlot) titleObject(ctx *Context) (render.Object, error) {
	size, err := p.titleAttr.Number("size")
	if err != nil {
		return nil, err
	}
	db := ctx.RC.Dev.BBox()
	offset := 2 * style.RelativeSize(size, db.Width(), db.Height())

	u, v, err := ctx.Frac.Project(0.5, 1)
	if err != nil {
		return nil, err
	}
	obj := &render.Text{
		Pos:    vec.Vec2{X: u, Y: v + offset},
		Text:   p.Title,
		HAlign: render.HCenter,
		VAlign: render.Bottom,
	}
	obj.Style = p.titleAttr.All()
	return obj, nil
}

// exterior returns the device bounding box of the plot including all
// furniture, for the interior region described by ctx.
func (p *FramedPlot) exterior(ctx *Context) (bounds.Box, error) {
	ext := ctx.DeviceBox
	for _, c := range p.Frame.components() {
		b, err := measureComponent(ctx, c)
		if err != nil {
			return bounds.Box{}, err
		}
		ext = ext.Union(b)
	}
	if p.Title != "" {
		obj, err := p.titleObject(ctx)
		if err != nil {
			return bounds.Box{}, err
		}
		ext = ext.Union(render.Measure(obj, ctx.RC))
	}
	return ext, nil
}

// interior determines the interior region such that the plot with all
// furniture fills the given region.
func (p *FramedPlot) interior(rc *render.Context, region bounds.Box) (bounds.Box, error) {
	in, err := solveInterior(region, func(in bounds.Box) (bounds.Box, error) {
		ctx, err := p.newContext(rc, in)
		if err != nil {
			return bounds.Box{}, err
		}
		return p.exterior(ctx)
	})
	if err != nil {
		return bounds.Box{}, err
	}
	return withAspect(in, p.Aspect), nil
}

// Compose implements the [Container] interface.
func (p *FramedPlot) Compose(rc *render.Context, region bounds.Box) error {
	interior, err := p.interior(rc, region)
	if err != nil {
		return err
	}
	ctx, err := p.newContext(rc, interior)
	if err != nil {
		return err
	}

	// data components, clipped to the interior
	if err := renderClipped(ctx, p.Content, interior); err != nil {
		return err
	}

	// axis furniture and title, unclipped
	for _, c := range p.Frame.components() {
		if err := renderComponent(ctx, c); err != nil {
			return err
		}
	}
	if p.Title != "" {
		obj, err := p.titleObject(ctx)
		if err != nil {
			return err
		}
		if err := render.Render(obj, rc); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders the plot onto a device.
func (p *FramedPlot) Draw(dev render.Renderer) error {
	margin, err := p.attr.Number("margin")
	if err != nil {
		return err
	}
	return drawInto(dev, margin, p)
}
