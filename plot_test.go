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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plot/bounds"
	"seehuhn.de/go/plot/projection"
	"seehuhn.de/go/plot/render"
	"seehuhn.de/go/plot/style"
)

func TestFramedPlotDraw(t *testing.T) {
	x := make([]float64, 11)
	y := make([]float64, 11)
	for i := range x {
		x[i] = float64(i)
		y[i] = x[i] * x[i]
	}

	p := NewFramedPlot()
	p.Add(NewCurve(x, y))
	p.SetTitle("quadratic")
	p.SetXLabel("x")
	p.SetYLabel("y")

	rec := render.NewRecorder(400, 300)
	if err := p.Draw(rec); err != nil {
		t.Fatal(err)
	}

	if n := rec.Count(render.OpOpen); n != 1 {
		t.Errorf("got %d Open calls, want 1", n)
	}
	if n := rec.Count(render.OpClose); n != 1 {
		t.Errorf("got %d Close calls, want 1", n)
	}
	if rec.Count(render.OpCurve) < 1 {
		t.Error("no curve drawn")
	}
	if rec.Count(render.OpClip) < 1 {
		t.Error("content not clipped")
	}
	// 4 spines, tick labels, axis labels, title
	if n := rec.Count(render.OpText); n < 3 {
		t.Errorf("got %d text calls", n)
	}
	if s, r := rec.Count(render.OpSave), rec.Count(render.OpRestore); s != r {
		t.Errorf("%d saves, %d restores", s, r)
	}
	if d := rec.StateDepth(); d != 0 {
		t.Errorf("state depth %d after drawing", d)
	}
}

func TestFramedPlotFurnitureInside(t *testing.T) {
	p := NewFramedPlot()
	p.Add(NewCurve([]float64{0, 1}, []float64{0, 1}))

	rec := render.NewRecorder(400, 300)
	rc := render.NewContext(rec)
	region := bounds.New(20, 15, 380, 285)

	interior, err := p.interior(rc, region)
	if err != nil {
		t.Fatal(err)
	}
	ll := interior.LowerLeft()
	ur := interior.UpperRight()
	if !region.Contains(ll.X, ll.Y) || !region.Contains(ur.X, ur.Y) {
		t.Errorf("interior %v outside region %v", interior, region)
	}

	ctx, err := p.newContext(rc, interior)
	if err != nil {
		t.Fatal(err)
	}
	ext, err := p.exterior(ctx)
	if err != nil {
		t.Fatal(err)
	}
	tol := 2 * layoutTol * region.Diagonal()
	if d := ext.LowerLeft().Sub(region.LowerLeft()).Length(); d > tol {
		t.Errorf("exterior lower left off by %g", d)
	}
	if d := ext.UpperRight().Sub(region.UpperRight()).Length(); d > tol {
		t.Errorf("exterior upper right off by %g", d)
	}
}

func TestEmptyPlot(t *testing.T) {
	p := NewFramedPlot()
	rec := render.NewRecorder(400, 300)
	err := p.Draw(rec)
	var emptyErr *EmptyContainerError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("got error %v, want EmptyContainerError", err)
	}
}

func TestPlotProjection(t *testing.T) {
	p := NewPlot()
	p.SetXRange(0, 1)
	p.SetYRange(0, 1)
	p.Add(NewCurve([]float64{0, 1}, []float64{0, 1}))

	rec := render.NewRecorder(400, 300)
	rc := render.NewContext(rec)
	if err := p.Compose(rc, bounds.New(0, 0, 400, 300)); err != nil {
		t.Fatal(err)
	}

	var curve []vec.Vec2
	for _, c := range rec.Cmds {
		if c.Op == render.OpCurve {
			curve = c.Args[0].([]vec.Vec2)
		}
	}
	if curve == nil {
		t.Fatal("no curve recorded")
	}
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 400, Y: 300}}
	if d := cmp.Diff(curve, want); d != "" {
		t.Errorf("curve differs: %s", d)
	}
}

func TestLogPlot(t *testing.T) {
	x := []float64{1, 10, 100, 1000}
	y := []float64{1, 2, 3, 4}
	p := NewFramedPlot()
	p.XLog = true
	p.Add(NewCurve(x, y))

	rec := render.NewRecorder(400, 300)
	if err := p.Draw(rec); err != nil {
		t.Fatal(err)
	}
	if d := rec.StateDepth(); d != 0 {
		t.Errorf("state depth %d after drawing", d)
	}
}

func TestLogDomainError(t *testing.T) {
	p := NewFramedPlot()
	p.XLog = true
	p.SetXRange(-1, 10)
	p.SetYRange(0, 1)

	rec := render.NewRecorder(400, 300)
	err := p.Draw(rec)
	var domErr *projection.DomainError
	if !errors.As(err, &domErr) {
		t.Fatalf("got error %v, want DomainError", err)
	}
	if domErr.Axis != "x" {
		t.Errorf("got axis %q, want x", domErr.Axis)
	}
}

func TestFlippedRange(t *testing.T) {
	p := NewPlot()
	p.SetXRange(0, 1)
	p.SetYRange(1, 0) // y increases downward
	p.Add(NewCurve([]float64{0, 1}, []float64{0, 1}))

	rec := render.NewRecorder(400, 300)
	rc := render.NewContext(rec)
	if err := p.Compose(rc, bounds.New(0, 0, 400, 300)); err != nil {
		t.Fatal(err)
	}

	var curve []vec.Vec2
	for _, c := range rec.Cmds {
		if c.Op == render.OpCurve {
			curve = c.Args[0].([]vec.Vec2)
		}
	}
	want := []vec.Vec2{{X: 0, Y: 300}, {X: 400, Y: 0}}
	if d := cmp.Diff(curve, want); d != "" {
		t.Errorf("curve differs: %s", d)
	}
}

func TestGutter(t *testing.T) {
	p := NewPlot()
	p.Add(NewCurve([]float64{0, 10}, []float64{0, 10}))
	x0, x1, y0, y1, err := p.dataRange()
	if err != nil {
		t.Fatal(err)
	}
	// automatic limits are widened by the gutter fraction
	if x0 >= 0 || x1 <= 10 || y0 >= 0 || y1 <= 10 {
		t.Errorf("got range [%g,%g]x[%g,%g]", x0, x1, y0, y1)
	}

	p.SetXRange(0, 10)
	x0, x1, _, _, err = p.dataRange()
	if err != nil {
		t.Fatal(err)
	}
	// explicit ranges are used as given
	if x0 != 0 || x1 != 10 {
		t.Errorf("got x range [%g,%g], want [0,10]", x0, x1)
	}
}

func TestTable(t *testing.T) {
	mkplot := func() *Plot {
		p := NewPlot()
		p.SetXRange(0, 1)
		p.SetYRange(0, 1)
		p.Add(NewCurve([]float64{0, 1}, []float64{0, 1}))
		return p
	}
	tab := NewTable(1, 2)
	tab.Set(0, 0, mkplot())
	tab.Set(0, 1, mkplot())

	rec := render.NewRecorder(400, 300)
	if err := tab.Draw(rec); err != nil {
		t.Fatal(err)
	}

	var clips []bounds.Box
	for _, c := range rec.Cmds {
		if c.Op == render.OpClip {
			clips = append(clips, c.Args[0].(bounds.Box))
		}
	}
	if len(clips) != 2 {
		t.Fatalf("got %d clip regions, want 2", len(clips))
	}
	if clips[0].UpperRight().X > clips[1].LowerLeft().X {
		t.Errorf("cells overlap: %v, %v", clips[0], clips[1])
	}
}

func TestEmptyTable(t *testing.T) {
	tab := NewTable(2, 2)
	rec := render.NewRecorder(400, 300)
	err := tab.Draw(rec)
	var emptyErr *EmptyContainerError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("got error %v, want EmptyContainerError", err)
	}
	if emptyErr.Kind != "table" {
		t.Errorf("got kind %q, want table", emptyErr.Kind)
	}
}

func TestInset(t *testing.T) {
	inner := NewPlot()
	inner.SetXRange(0, 1)
	inner.SetYRange(0, 1)
	inner.Add(NewCurve([]float64{0, 1}, []float64{1, 0}))

	outer := NewFramedPlot()
	outer.Add(NewCurve([]float64{0, 10}, []float64{0, 10}))
	outer.Add(NewInset(0.6, 0.6, 0.95, 0.95, inner))

	rec := render.NewRecorder(400, 300)
	if err := outer.Draw(rec); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count(render.OpCurve); n != 2 {
		t.Errorf("got %d curves, want 2", n)
	}
	if d := rec.StateDepth(); d != 0 {
		t.Errorf("state depth %d after drawing", d)
	}
}

func TestComponentStyleOverride(t *testing.T) {
	c := NewCurve([]float64{0, 1}, []float64{0, 1})
	c.SetStyle("color", style.String("red"))

	v, err := c.Attributes().Get("color")
	if err != nil {
		t.Fatal(err)
	}
	if v != style.String("red") {
		t.Errorf("got %v", v)
	}
}
