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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plot/bounds"
	"seehuhn.de/go/plot/render"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestCurveMake(t *testing.T) {
	interior := bounds.New(0, 0, 100, 100)
	ctx, _ := newTestContext(t, 0, 10, 0, 10, interior)

	c := NewCurve([]float64{0, 5, 10}, []float64{0, 10, 0})
	if err := c.Make(ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.objs) != 1 {
		t.Fatalf("got %d objects, want 1", len(ctx.objs))
	}
	path := ctx.objs[0].(*render.Path)
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 50, Y: 100}, {X: 100, Y: 0}}
	if d := cmp.Diff(path.Points, want, approx); d != "" {
		t.Errorf("points differ: %s", d)
	}
}

func TestCurveLimits(t *testing.T) {
	c := NewCurve([]float64{1, 2, 3}, []float64{-1, 5, 2})
	got := c.Limits()
	want := bounds.New(1, -1, 3, 5)
	if d := cmp.Diff(got, want, cmp.AllowUnexported(bounds.Box{}), approx); d != "" {
		t.Errorf("limits differ: %s", d)
	}
}

func TestHistogramMake(t *testing.T) {
	interior := bounds.New(0, 0, 100, 100)
	ctx, _ := newTestContext(t, 0, 10, 0, 10, interior)

	c := NewHistogram([]float64{2, 5, 3})
	if err := c.Make(ctx); err != nil {
		t.Fatal(err)
	}
	path := ctx.objs[0].(*render.Path)
	if len(path.Points) != 6 {
		t.Fatalf("got %d points, want 6", len(path.Points))
	}
	// the first bin spans x in [0, 1] at height 2
	want := []vec.Vec2{{X: 0, Y: 20}, {X: 10, Y: 20}}
	if d := cmp.Diff(path.Points[:2], want, approx); d != "" {
		t.Errorf("first bin differs: %s", d)
	}
}

func TestSlopeClipped(t *testing.T) {
	interior := bounds.New(0, 0, 100, 100)
	ctx, _ := newTestContext(t, 0, 10, 0, 10, interior)

	c := NewSlope(2, 0)
	if err := c.Make(ctx); err != nil {
		t.Fatal(err)
	}
	line := ctx.objs[0].(*render.Line)
	if d := cmp.Diff(line.P0, vec.Vec2{X: 0, Y: 0}, approx); d != "" {
		t.Errorf("start differs: %s", d)
	}
	if d := cmp.Diff(line.P1, vec.Vec2{X: 50, Y: 100}, approx); d != "" {
		t.Errorf("end differs: %s", d)
	}
}

func TestSlopeInvisible(t *testing.T) {
	interior := bounds.New(0, 0, 100, 100)
	ctx, _ := newTestContext(t, 0, 10, 0, 10, interior)

	c := NewSlope(0, 20) // horizontal line above the visible range
	if err := c.Make(ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.objs) != 0 {
		t.Errorf("got %d objects, want 0", len(ctx.objs))
	}
}

func TestLineXY(t *testing.T) {
	interior := bounds.New(0, 0, 100, 100)
	ctx, _ := newTestContext(t, 0, 10, 0, 10, interior)

	if err := NewLineX(5).Make(ctx); err != nil {
		t.Fatal(err)
	}
	if err := NewLineY(5).Make(ctx); err != nil {
		t.Fatal(err)
	}
	vert := ctx.objs[0].(*render.Line)
	if vert.P0.X != vert.P1.X {
		t.Errorf("vertical line from %v to %v", vert.P0, vert.P1)
	}
	horiz := ctx.objs[1].(*render.Line)
	if horiz.P0.Y != horiz.P1.Y {
		t.Errorf("horizontal line from %v to %v", horiz.P0, horiz.P1)
	}
}

func TestErrorBarsY(t *testing.T) {
	interior := bounds.New(0, 0, 100, 100)
	ctx, _ := newTestContext(t, 0, 10, 0, 10, interior)

	c := NewErrorBarsY([]float64{2, 8}, []float64{5, 5}, []float64{1, 2})
	if err := c.Make(ctx); err != nil {
		t.Fatal(err)
	}
	// one bar line per point, plus one comb of caps
	if len(ctx.objs) != 3 {
		t.Fatalf("got %d objects, want 3", len(ctx.objs))
	}
	bar := ctx.objs[0].(*render.Line)
	if d := cmp.Diff(bar.P0, vec.Vec2{X: 20, Y: 40}, approx); d != "" {
		t.Errorf("bar start differs: %s", d)
	}
	if d := cmp.Diff(bar.P1, vec.Vec2{X: 20, Y: 60}, approx); d != "" {
		t.Errorf("bar end differs: %s", d)
	}
	caps := ctx.objs[2].(*render.Comb)
	if len(caps.Points) != 4 {
		t.Errorf("got %d caps, want 4", len(caps.Points))
	}
	if caps.D.Y != 0 || caps.D.X <= 0 {
		t.Errorf("cap direction %v, want horizontal", caps.D)
	}
}

func TestFillBelow(t *testing.T) {
	interior := bounds.New(0, 0, 100, 100)
	ctx, _ := newTestContext(t, 0, 10, 0, 10, interior)

	c := NewFillBelow([]float64{0, 5, 10}, []float64{5, 8, 5})
	if err := c.Make(ctx); err != nil {
		t.Fatal(err)
	}
	poly := ctx.objs[0].(*render.Polygon)
	if len(poly.Points) != 5 {
		t.Fatalf("got %d points, want 5", len(poly.Points))
	}
	// the closing edge runs along the bottom of the plot
	if poly.Points[3].Y != 0 || poly.Points[4].Y != 0 {
		t.Errorf("closing edge at y=%g, %g, want 0",
			poly.Points[3].Y, poly.Points[4].Y)
	}
}

func TestFillBetween(t *testing.T) {
	interior := bounds.New(0, 0, 100, 100)
	ctx, _ := newTestContext(t, 0, 10, 0, 10, interior)

	x := []float64{0, 10}
	c := NewFillBetween(x, []float64{2, 2}, x, []float64{8, 8})
	if err := c.Make(ctx); err != nil {
		t.Fatal(err)
	}
	poly := ctx.objs[0].(*render.Polygon)
	want := []vec.Vec2{
		{X: 0, Y: 20}, {X: 100, Y: 20},
		{X: 100, Y: 80}, {X: 0, Y: 80},
	}
	if d := cmp.Diff(poly.Points, want, approx); d != "" {
		t.Errorf("points differ: %s", d)
	}
}

func TestDataLabels(t *testing.T) {
	interior := bounds.New(0, 0, 100, 100)
	ctx, _ := newTestContext(t, 0, 10, 0, 10, interior)

	c := NewLabels([]float64{5}, []float64{5}, []string{"peak"})
	if err := c.Make(ctx); err != nil {
		t.Fatal(err)
	}
	labels := ctx.objs[0].(*render.Labels)
	if d := cmp.Diff(labels.Points, []vec.Vec2{{X: 50, Y: 50}}, approx); d != "" {
		t.Errorf("position differs: %s", d)
	}
	if labels.Labels[0] != "peak" {
		t.Errorf("got label %q", labels.Labels[0])
	}
}

func TestKeyMake(t *testing.T) {
	interior := bounds.New(0, 0, 100, 100)
	ctx, _ := newTestContext(t, 0, 10, 0, 10, interior)

	curve := NewCurve([]float64{0, 1}, []float64{0, 1})
	pts := NewPoints([]float64{0, 1}, []float64{0, 1})
	key := NewKey(0.1, 0.9)
	key.AddEntry(curve, "model")
	key.AddEntry(pts, "data")
	if err := key.Make(ctx); err != nil {
		t.Fatal(err)
	}

	var nLines, nSymbols, nTexts int
	for _, obj := range ctx.objs {
		switch obj.(type) {
		case *render.Line:
			nLines++
		case *render.Symbol:
			nSymbols++
		case *render.Text:
			nTexts++
		}
	}
	if nLines != 1 || nSymbols != 1 || nTexts != 2 {
		t.Errorf("got %d lines, %d symbols, %d texts; want 1, 1, 2",
			nLines, nSymbols, nTexts)
	}
}
