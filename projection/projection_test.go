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

package projection

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/plot/bounds"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAffineCorners(t *testing.T) {
	cases := []struct {
		x0, x1, y0, y1 float64
		dest           bounds.Box
	}{
		{0, 10, 0, 100, bounds.New(0, 0, 400, 300)},
		{-5, 5, 2, 4, bounds.New(10, 20, 110, 220)},
		{1, 2, 3, 4, bounds.New(-1, -1, 1, 1)},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
			p := NewAffine(c.x0, c.x1, c.y0, c.y1, c.dest)
			ll := c.dest.LowerLeft()
			ur := c.dest.UpperRight()
			u, v, _ := p.Project(c.x0, c.y0)
			if !near(u, ll.X) || !near(v, ll.Y) {
				t.Errorf("(x0,y0) -> (%g,%g), want (%g,%g)", u, v, ll.X, ll.Y)
			}
			u, v, _ = p.Project(c.x1, c.y1)
			if !near(u, ur.X) || !near(v, ur.Y) {
				t.Errorf("(x1,y1) -> (%g,%g), want (%g,%g)", u, v, ur.X, ur.Y)
			}
		})
	}
}

func TestAffineDegenerate(t *testing.T) {
	// a degenerate source range is widened to [lo-1, lo+1]
	p := NewAffine(5, 5, 0, 1, bounds.New(0, 0, 100, 100))
	u, _, _ := p.Project(4, 0)
	if !near(u, 0) {
		t.Errorf("Project(4, .) = %g, want 0", u)
	}
	u, _, _ = p.Project(6, 0)
	if !near(u, 100) {
		t.Errorf("Project(6, .) = %g, want 100", u)
	}
}

func TestFlip(t *testing.T) {
	p := NewAffine(10, 0, 0, 1, bounds.New(0, 0, 100, 100))
	if !p.FlippedX() {
		t.Error("descending x interval not detected as flipped")
	}
	if p.FlippedY() {
		t.Error("ascending y interval detected as flipped")
	}
	u, _, _ := p.Project(0, 0)
	if !near(u, 100) {
		t.Errorf("Project(0, .) = %g, want 100", u)
	}
}

func TestLogProjection(t *testing.T) {
	dest := bounds.New(0, 0, 300, 300)
	p, err := NewLog(1, 1000, 1, 1000, dest, true, true)
	if err != nil {
		t.Fatal(err)
	}
	u, v, err := p.Project(10, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !near(u, 100) || !near(v, 200) {
		t.Errorf("Project(10, 100) = (%g, %g), want (100, 200)", u, v)
	}
}

func TestLogDomainError(t *testing.T) {
	dest := bounds.New(0, 0, 100, 100)
	p, err := NewLog(1, 100, 0, 1, dest, true, false)
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = p.Project(-1, 0.5)
	var dErr *DomainError
	if !errors.As(err, &dErr) {
		t.Fatalf("got %v, want DomainError", err)
	}
	if dErr.Axis != "x" || dErr.Value != -1 {
		t.Errorf("got %v", dErr)
	}

	_, err = NewLog(0, 100, 0, 1, dest, true, false)
	if !errors.As(err, &dErr) {
		t.Fatalf("got %v, want DomainError", err)
	}
}

func TestCompose(t *testing.T) {
	// unit square -> [0,100]^2 -> [0,10]^2
	inner := NewAffine(0, 1, 0, 1, bounds.New(0, 0, 100, 100))
	outer := NewAffine(0, 100, 0, 100, bounds.New(0, 0, 10, 10))
	p := Compose(outer, inner)
	if _, ok := p.(*Affine); !ok {
		t.Errorf("composition of affine projections is not affine")
	}
	u, v, _ := p.Project(0.5, 0.25)
	if !near(u, 5) || !near(v, 2.5) {
		t.Errorf("Project(0.5, 0.25) = (%g, %g), want (5, 2.5)", u, v)
	}
}

func TestComposeLog(t *testing.T) {
	inner, err := NewLog(1, 100, 0, 1, bounds.New(0, 0, 1, 1), true, false)
	if err != nil {
		t.Fatal(err)
	}
	outer := NewAffine(0, 1, 0, 1, bounds.New(0, 0, 200, 100))
	p := Compose(outer, inner)
	u, v, err := p.Project(10, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !near(u, 100) || !near(v, 50) {
		t.Errorf("Project(10, 0.5) = (%g, %g), want (100, 50)", u, v)
	}
}
