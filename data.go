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
	stdimage "image"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plot/bounds"
	"seehuhn.de/go/plot/render"
	"seehuhn.de/go/plot/style"
)

// dataLimits returns the bounding box of a point sequence.
func dataLimits(x, y []float64) bounds.Box {
	var b bounds.Box
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		b = b.Extend(vec.Vec2{X: x[i], Y: y[i]})
	}
	return b
}

// A Curve connects the data points (X[i], Y[i]) with line segments.
type Curve struct {
	component
	X, Y []float64
}

// NewCurve returns a curve through the given data points.
func NewCurve(x, y []float64) *Curve {
	return &Curve{
		component: newComponent([]string{"component", "line", "curve"}, style.LineRename),
		X:         x,
		Y:         y,
	}
}

func (c *Curve) Limits() bounds.Box {
	return dataLimits(c.X, c.Y)
}

func (c *Curve) Make(ctx *Context) error {
	pts, err := ctx.ProjectAll(c.X, c.Y)
	if err != nil {
		return err
	}
	obj := &render.Path{Points: pts}
	obj.Style = c.attr.All()
	ctx.Add(obj)
	return nil
}

// Points draws a plot symbol at every data point.
type Points struct {
	component
	X, Y []float64
}

// NewPoints returns a scatter of symbols at the given data points.
func NewPoints(x, y []float64) *Points {
	return &Points{
		component: newComponent([]string{"component", "symbol", "points"}, style.SymbolRename),
		X:         x,
		Y:         y,
	}
}

func (c *Points) Limits() bounds.Box {
	return dataLimits(c.X, c.Y)
}

// DrawSample implements the [SampleDrawer] interface; the key sample
// is a single symbol.
func (c *Points) DrawSample(ctx *Context, p0, p1 vec.Vec2) {
	mid := scaled(p0.Add(p1), 0.5)
	obj := &render.Symbol{Pos: mid}
	obj.Style = c.attr.All()
	ctx.Add(obj)
}

func (c *Points) Make(ctx *Context) error {
	pts, err := ctx.ProjectAll(c.X, c.Y)
	if err != nil {
		return err
	}
	obj := &render.Symbols{Points: pts}
	obj.Style = c.attr.All()
	ctx.Add(obj)
	return nil
}

// A Histogram draws bin counts as a step function.  Bin i covers the
// x interval [X0+i*BinWidth, X0+(i+1)*BinWidth] at height Y[i].
type Histogram struct {
	component
	Y        []float64
	X0       float64
	BinWidth float64
}

// NewHistogram returns a histogram of the given bin heights, with unit
// bins starting at zero.
func NewHistogram(y []float64) *Histogram {
	return &Histogram{
		component: newComponent([]string{"component", "line", "histogram"}, style.LineRename),
		Y:         y,
		BinWidth:  1,
	}
}

func (c *Histogram) Limits() bounds.Box {
	if len(c.Y) == 0 {
		return bounds.Box{}
	}
	b := bounds.New(c.X0, 0, c.X0+float64(len(c.Y))*c.BinWidth, 0)
	for _, y := range c.Y {
		b = b.Extend(vec.Vec2{X: c.X0, Y: y})
	}
	return b
}

func (c *Histogram) Make(ctx *Context) error {
	n := len(c.Y)
	if n == 0 {
		return nil
	}
	x := make([]float64, 0, 2*n)
	y := make([]float64, 0, 2*n)
	for i, yi := range c.Y {
		x = append(x, c.X0+float64(i)*c.BinWidth, c.X0+float64(i+1)*c.BinWidth)
		y = append(y, yi, yi)
	}
	pts, err := ctx.ProjectAll(x, y)
	if err != nil {
		return err
	}
	obj := &render.Path{Points: pts}
	obj.Style = c.attr.All()
	ctx.Add(obj)
	return nil
}

// A LineX is a vertical line at a fixed x position, spanning the full
// y range of the plot.
type LineX struct {
	component
	X float64
}

// NewLineX returns a vertical line at the given x position.
func NewLineX(x float64) *LineX {
	return &LineX{
		component: newComponent([]string{"component", "line"}, style.LineRename),
		X:         x,
	}
}

func (c *LineX) Make(ctx *Context) error {
	y0, y1 := ctx.DataBox.YRange()
	p0, err := ctx.Project(c.X, y0)
	if err != nil {
		return err
	}
	p1, err := ctx.Project(c.X, y1)
	if err != nil {
		return err
	}
	obj := &render.Line{P0: p0, P1: p1}
	obj.Style = c.attr.All()
	ctx.Add(obj)
	return nil
}

// A LineY is a horizontal line at a fixed y position, spanning the
// full x range of the plot.
type LineY struct {
	component
	Y float64
}

// NewLineY returns a horizontal line at the given y position.
func NewLineY(y float64) *LineY {
	return &LineY{
		component: newComponent([]string{"component", "line"}, style.LineRename),
		Y:         y,
	}
}

func (c *LineY) Make(ctx *Context) error {
	x0, x1 := ctx.DataBox.XRange()
	p0, err := ctx.Project(x0, c.Y)
	if err != nil {
		return err
	}
	p1, err := ctx.Project(x1, c.Y)
	if err != nil {
		return err
	}
	obj := &render.Line{P0: p0, P1: p1}
	obj.Style = c.attr.All()
	ctx.Add(obj)
	return nil
}

// A Slope is the straight line y = Slope*x + Intercept, clipped to the
// visible data range.
type Slope struct {
	component
	Slope     float64
	Intercept float64
}

// NewSlope returns the line y = slope*x + intercept.
func NewSlope(slope, intercept float64) *Slope {
	return &Slope{
		component: newComponent([]string{"component", "line"}, style.LineRename),
		Slope:     slope,
		Intercept: intercept,
	}
}

func (c *Slope) Make(ctx *Context) error {
	x0, x1 := ctx.DataBox.XRange()
	y0, y1 := ctx.DataBox.YRange()
	if c.Slope != 0 {
		// restrict to the x interval where the line is inside the
		// y range
		a := (y0 - c.Intercept) / c.Slope
		b := (y1 - c.Intercept) / c.Slope
		if a > b {
			a, b = b, a
		}
		if a > x0 {
			x0 = a
		}
		if b < x1 {
			x1 = b
		}
		if x0 > x1 {
			return nil
		}
	} else if c.Intercept < y0 || c.Intercept > y1 {
		return nil
	}
	p0, err := ctx.Project(x0, c.Slope*x0+c.Intercept)
	if err != nil {
		return err
	}
	p1, err := ctx.Project(x1, c.Slope*x1+c.Intercept)
	if err != nil {
		return err
	}
	obj := &render.Line{P0: p0, P1: p1}
	obj.Style = c.attr.All()
	ctx.Add(obj)
	return nil
}

// ErrorBarsX draws horizontal error bars, from X[i]-Err[i] to
// X[i]+Err[i] at height Y[i], with vertical caps at both ends.
type ErrorBarsX struct {
	component
	X, Y, Err []float64
}

// NewErrorBarsX returns symmetric horizontal error bars.
func NewErrorBarsX(x, y, err []float64) *ErrorBarsX {
	return &ErrorBarsX{
		component: newComponent([]string{"component", "line", "errorbars"}, style.LineRename),
		X:         x,
		Y:         y,
		Err:       err,
	}
}

func (c *ErrorBarsX) Limits() bounds.Box {
	var b bounds.Box
	for i := range c.X {
		b = b.Extend(vec.Vec2{X: c.X[i] - c.Err[i], Y: c.Y[i]})
		b = b.Extend(vec.Vec2{X: c.X[i] + c.Err[i], Y: c.Y[i]})
	}
	return b
}

func (c *ErrorBarsX) Make(ctx *Context) error {
	return makeErrorBars(ctx, c.attr, len(c.X),
		func(i int) (lo, hi, other float64) {
			return c.X[i] - c.Err[i], c.X[i] + c.Err[i], c.Y[i]
		},
		true)
}

// ErrorBarsY draws vertical error bars, from Y[i]-Err[i] to
// Y[i]+Err[i] at position X[i], with horizontal caps at both ends.
type ErrorBarsY struct {
	component
	X, Y, Err []float64
}

// NewErrorBarsY returns symmetric vertical error bars.
func NewErrorBarsY(x, y, err []float64) *ErrorBarsY {
	return &ErrorBarsY{
		component: newComponent([]string{"component", "line", "errorbars"}, style.LineRename),
		X:         x,
		Y:         y,
		Err:       err,
	}
}

func (c *ErrorBarsY) Limits() bounds.Box {
	var b bounds.Box
	for i := range c.X {
		b = b.Extend(vec.Vec2{X: c.X[i], Y: c.Y[i] - c.Err[i]})
		b = b.Extend(vec.Vec2{X: c.X[i], Y: c.Y[i] + c.Err[i]})
	}
	return b
}

func (c *ErrorBarsY) Make(ctx *Context) error {
	return makeErrorBars(ctx, c.attr, len(c.X),
		func(i int) (lo, hi, other float64) {
			return c.Y[i] - c.Err[i], c.Y[i] + c.Err[i], c.X[i]
		},
		false)
}

// makeErrorBars emits one bar line per data point, plus a single comb
// of end caps.  For horizontal bars the caps are vertical, and vice
// versa.
func makeErrorBars(ctx *Context, attr *style.AttributeSet, n int, bar func(i int) (lo, hi, other float64), horizontal bool) error {
	size, err := attr.Number("barsize")
	if err != nil {
		return err
	}
	db := ctx.RC.Dev.BBox()
	capLen := style.RelativeSize(size, db.Width(), db.Height())

	capD := vec.Vec2{Y: capLen}
	if !horizontal {
		capD = vec.Vec2{X: capLen}
	}
	var capPts []vec.Vec2
	for i := 0; i < n; i++ {
		lo, hi, other := bar(i)
		var p0, p1 vec.Vec2
		var err error
		if horizontal {
			p0, err = ctx.Project(lo, other)
			if err != nil {
				return err
			}
			p1, err = ctx.Project(hi, other)
		} else {
			p0, err = ctx.Project(other, lo)
			if err != nil {
				return err
			}
			p1, err = ctx.Project(other, hi)
		}
		if err != nil {
			return err
		}
		obj := &render.Line{P0: p0, P1: p1}
		obj.Style = attr.All()
		ctx.Add(obj)
		capPts = append(capPts,
			p0.Sub(scaled(capD, 0.5)),
			p1.Sub(scaled(capD, 0.5)))
	}
	if len(capPts) > 0 {
		obj := &render.Comb{Points: capPts, D: capD}
		obj.Style = attr.All()
		ctx.Add(obj)
	}
	return nil
}

// FillBetween fills the area between two curves.
type FillBetween struct {
	component
	X1, Y1 []float64
	X2, Y2 []float64
}

// NewFillBetween returns the filled area between the curves
// (x1, y1) and (x2, y2).
func NewFillBetween(x1, y1, x2, y2 []float64) *FillBetween {
	return &FillBetween{
		component: newComponent([]string{"component", "fill"}, style.FillRename),
		X1:        x1,
		Y1:        y1,
		X2:        x2,
		Y2:        y2,
	}
}

func (c *FillBetween) Limits() bounds.Box {
	return dataLimits(c.X1, c.Y1).Union(dataLimits(c.X2, c.Y2))
}

func (c *FillBetween) Make(ctx *Context) error {
	p1, err := ctx.ProjectAll(c.X1, c.Y1)
	if err != nil {
		return err
	}
	p2, err := ctx.ProjectAll(c.X2, c.Y2)
	if err != nil {
		return err
	}
	pts := make([]vec.Vec2, 0, len(p1)+len(p2))
	pts = append(pts, p1...)
	for i := len(p2) - 1; i >= 0; i-- {
		pts = append(pts, p2[i])
	}
	obj := &render.Polygon{Points: pts}
	obj.Style = c.attr.All()
	ctx.Add(obj)
	return nil
}

// FillAbove fills the area between a curve and the top edge of the
// plot.
type FillAbove struct {
	component
	X, Y []float64
}

// NewFillAbove returns the filled area above the curve (x, y).
func NewFillAbove(x, y []float64) *FillAbove {
	return &FillAbove{
		component: newComponent([]string{"component", "fill"}, style.FillRename),
		X:         x,
		Y:         y,
	}
}

func (c *FillAbove) Limits() bounds.Box {
	return dataLimits(c.X, c.Y)
}

func (c *FillAbove) Make(ctx *Context) error {
	_, hi := ctx.DataBox.YRange()
	return makeFillEdge(ctx, c.attr, c.X, c.Y, hi)
}

// FillBelow fills the area between a curve and the bottom edge of the
// plot.
type FillBelow struct {
	component
	X, Y []float64
}

// NewFillBelow returns the filled area below the curve (x, y).
func NewFillBelow(x, y []float64) *FillBelow {
	return &FillBelow{
		component: newComponent([]string{"component", "fill"}, style.FillRename),
		X:         x,
		Y:         y,
	}
}

func (c *FillBelow) Limits() bounds.Box {
	return dataLimits(c.X, c.Y)
}

func (c *FillBelow) Make(ctx *Context) error {
	lo, _ := ctx.DataBox.YRange()
	return makeFillEdge(ctx, c.attr, c.X, c.Y, lo)
}

func makeFillEdge(ctx *Context, attr *style.AttributeSet, x, y []float64, edge float64) error {
	if len(x) == 0 {
		return nil
	}
	pts, err := ctx.ProjectAll(x, y)
	if err != nil {
		return err
	}
	q0, err := ctx.Project(x[len(x)-1], edge)
	if err != nil {
		return err
	}
	q1, err := ctx.Project(x[0], edge)
	if err != nil {
		return err
	}
	pts = append(pts, q0, q1)
	obj := &render.Polygon{Points: pts}
	obj.Style = attr.All()
	ctx.Add(obj)
	return nil
}

// Labels places one text string at each data point.
type Labels struct {
	component
	X, Y   []float64
	Texts  []string
	Angle  float64
	HAlign render.HAlign
	VAlign render.VAlign
}

// NewLabels returns text labels at the given data points.
func NewLabels(x, y []float64, texts []string) *Labels {
	return &Labels{
		component: newComponent([]string{"component", "text", "labels"}, style.TextRename),
		X:         x,
		Y:         y,
		Texts:     texts,
		HAlign:    render.HCenter,
		VAlign:    render.VCenter,
	}
}

func (c *Labels) Limits() bounds.Box {
	return dataLimits(c.X, c.Y)
}

func (c *Labels) Make(ctx *Context) error {
	pts, err := ctx.ProjectAll(c.X, c.Y)
	if err != nil {
		return err
	}
	n := len(pts)
	if len(c.Texts) < n {
		n = len(c.Texts)
	}
	obj := &render.Labels{
		Points: pts[:n],
		Labels: c.Texts[:n],
		Angle:  c.Angle,
		HAlign: c.HAlign,
		VAlign: c.VAlign,
	}
	obj.Style = c.attr.All()
	ctx.Add(obj)
	return nil
}

// An Image draws a raster image into the data rectangle with corners
// (X0, Y0) and (X1, Y1).
type Image struct {
	component
	Img            stdimage.Image
	X0, Y0, X1, Y1 float64
}

// NewImage returns an image covering the given data rectangle.
func NewImage(img stdimage.Image, x0, y0, x1, y1 float64) *Image {
	return &Image{
		component: newComponent([]string{"component"}, nil),
		Img:       img,
		X0:        x0,
		Y0:        y0,
		X1:        x1,
		Y1:        y1,
	}
}

func (c *Image) Limits() bounds.Box {
	return bounds.New(c.X0, c.Y0, c.X1, c.Y1)
}

func (c *Image) Make(ctx *Context) error {
	p0, err := ctx.Project(c.X0, c.Y0)
	if err != nil {
		return err
	}
	p1, err := ctx.Project(c.X1, c.Y1)
	if err != nil {
		return err
	}
	obj := &render.Image{
		Img:    c.Img,
		Region: bounds.FromCorners(p0, p1),
	}
	obj.Style = c.attr.All()
	ctx.Add(obj)
	return nil
}
